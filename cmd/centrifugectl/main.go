// Command centrifugectl sends API commands to a Centrifugo hub, mints
// connection tokens and serves the channel auth endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const usage = `Usage: centrifugectl <command> [flags]

Hub commands:
  publish      -channel C -data JSON [-client ID]     Publish data into a channel.
  broadcast    -channels A,B -data JSON [-client ID]  Publish data into several channels.
  presence     -channel C                             Clients subscribed to a channel.
  history      -channel C                             Recent messages of a channel.
  unsubscribe  -user U [-channel C]                   Unsubscribe a user.
  disconnect   -user U                                Disconnect a user.
  channels                                            Active channels.
  stats                                               Node statistics.

Signing:
  token        <user|client> <timestamp|channel> [info]  Print a connection or channel token.
  connection   -user U [-sockjs] [-info JSON]            Print client connection settings.
  sign         <json>                                    Print the API signature of a body.

Server:
  serve        [-addr :8080] [-user-header X-User-ID] [-allow PATTERNS]
               Serve POST /broadcasting/auth and /health/{live,ready}.

Environment: CENTRIFUGE_URL, CENTRIFUGE_SECRET (required), CENTRIFUGE_REDIS_API,
CENTRIFUGE_REDIS_PREFIX, CENTRIFUGE_REDIS_NUM_SHARDS, CENTRIFUGE_HTTP_TIMEOUT,
REDIS_URL, SERVER_ADDR, LOG_LEVEL, LOG_FORMAT. A .env file is read when present.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	case errors.Is(err, errCommandFailed):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "centrifugectl: %v\n", err)
		os.Exit(1)
	}
}
