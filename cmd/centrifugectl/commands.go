package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/dmitrymomot/centrifuge/core/hub"
)

type hubCommand func(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error)

var hubCommands = map[string]hubCommand{
	"publish":     publishCommand,
	"broadcast":   broadcastCommand,
	"presence":    presenceCommand,
	"history":     historyCommand,
	"unsubscribe": unsubscribeCommand,
	"disconnect":  disconnectCommand,
	"channels": func(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error) {
		if err := fs.Parse(args); err != nil {
			return hub.Result{}, err
		}
		return c.Channels(ctx), nil
	},
	"stats": func(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error) {
		if err := fs.Parse(args); err != nil {
			return hub.Result{}, err
		}
		return c.Stats(ctx), nil
	},
}

// runHubCommand dispatches one command and prints its Result as JSON.
// A Result carrying an error is printed and reported as errCommandFailed.
func (a *app) runHubCommand(ctx context.Context, c *hub.Client, name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	res, err := hubCommands[name](ctx, c, fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%s: %w", name, err)
	}

	if err := a.printJSON(res); err != nil {
		return err
	}
	if res.Error != nil {
		return errCommandFailed
	}
	return nil
}

func publishCommand(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error) {
	channel := fs.String("channel", "", "channel name")
	data := fs.String("data", "{}", "JSON payload")
	client := fs.String("client", "", "connection id to exclude")
	if err := fs.Parse(args); err != nil {
		return hub.Result{}, err
	}
	if *channel == "" {
		return hub.Result{}, errors.New("-channel is required")
	}
	payload, err := parseData(*data)
	if err != nil {
		return hub.Result{}, err
	}
	return c.Publish(ctx, *channel, payload, publishOptions(*client)...), nil
}

func broadcastCommand(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error) {
	channels := fs.String("channels", "", "comma separated channel names")
	data := fs.String("data", "{}", "JSON payload")
	client := fs.String("client", "", "connection id to exclude")
	if err := fs.Parse(args); err != nil {
		return hub.Result{}, err
	}
	list := splitList(*channels)
	if len(list) == 0 {
		return hub.Result{}, errors.New("-channels is required")
	}
	payload, err := parseData(*data)
	if err != nil {
		return hub.Result{}, err
	}
	return c.Broadcast(ctx, list, payload, publishOptions(*client)...), nil
}

func presenceCommand(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error) {
	channel, err := channelFlag(fs, args)
	if err != nil {
		return hub.Result{}, err
	}
	return c.Presence(ctx, channel), nil
}

func historyCommand(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error) {
	channel, err := channelFlag(fs, args)
	if err != nil {
		return hub.Result{}, err
	}
	return c.History(ctx, channel), nil
}

func unsubscribeCommand(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error) {
	user := fs.String("user", "", "user id")
	channel := fs.String("channel", "", "limit to one channel")
	if err := fs.Parse(args); err != nil {
		return hub.Result{}, err
	}
	if *user == "" {
		return hub.Result{}, errors.New("-user is required")
	}
	var opts []hub.UnsubscribeOption
	if *channel != "" {
		opts = append(opts, hub.WithChannel(*channel))
	}
	return c.Unsubscribe(ctx, *user, opts...), nil
}

func disconnectCommand(ctx context.Context, c *hub.Client, fs *flag.FlagSet, args []string) (hub.Result, error) {
	user := fs.String("user", "", "user id")
	if err := fs.Parse(args); err != nil {
		return hub.Result{}, err
	}
	if *user == "" {
		return hub.Result{}, errors.New("-user is required")
	}
	return c.Disconnect(ctx, *user), nil
}

// runSigning prints tokens and signatures without contacting the hub.
func (a *app) runSigning(c *hub.Client, name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	switch name {
	case "token":
		if err := fs.Parse(args); err != nil {
			return ignoreHelp(err)
		}
		rest := fs.Args()
		if len(rest) < 2 || len(rest) > 3 {
			return fmt.Errorf("%w: token takes <user|client> <timestamp|channel> [info]", errUsage)
		}
		info := ""
		if len(rest) == 3 {
			info = rest[2]
		}
		_, err := fmt.Fprintln(a.stdout, c.GenerateToken(rest[0], rest[1], info))
		return err

	case "sign":
		if err := fs.Parse(args); err != nil {
			return ignoreHelp(err)
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("%w: sign takes exactly one body argument", errUsage)
		}
		_, err := fmt.Fprintln(a.stdout, c.GenerateAPISign([]byte(fs.Arg(0))))
		return err

	default:
		user := fs.String("user", "", "user id")
		sockJS := fs.Bool("sockjs", false, "use the SockJS endpoint")
		info := fs.String("info", "", "JSON info attached to the connection")
		if err := fs.Parse(args); err != nil {
			return ignoreHelp(err)
		}
		if *user == "" {
			return errors.New("connection: -user is required")
		}
		var opts []hub.ConnectionOption
		if *sockJS {
			opts = append(opts, hub.WithSockJS())
		}
		if *info != "" {
			opts = append(opts, hub.WithInfo(*info))
		}
		return a.printJSON(c.Connection(*user, opts...))
	}
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func channelFlag(fs *flag.FlagSet, args []string) (string, error) {
	channel := fs.String("channel", "", "channel name")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if *channel == "" {
		return "", errors.New("-channel is required")
	}
	return *channel, nil
}

func publishOptions(client string) []hub.PublishOption {
	if client == "" {
		return nil
	}
	return []hub.PublishOption{hub.WithClient(client)}
}

// parseData keeps the payload as raw JSON so it reaches the hub unchanged.
func parseData(s string) (json.RawMessage, error) {
	if !json.Valid([]byte(s)) {
		return nil, fmt.Errorf("-data is not valid JSON: %q", s)
	}
	return json.RawMessage(s), nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func ignoreHelp(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
