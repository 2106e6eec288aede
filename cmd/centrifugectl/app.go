package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/centrifuge/core/config"
	"github.com/dmitrymomot/centrifuge/core/hub"
	"github.com/dmitrymomot/centrifuge/core/logger"
	"github.com/dmitrymomot/centrifuge/core/server"
	"github.com/dmitrymomot/centrifuge/integration/database/redis"
)

var (
	errUsage         = errors.New("usage")
	errCommandFailed = errors.New("command failed")
)

type appConfig struct {
	Hub    hub.Config
	Redis  redis.Config
	Server server.Config

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// app carries what every command needs. It is built once per invocation.
type app struct {
	cfg    appConfig
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
	redis  *goredis.Client
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	a := &app{
		cfg:    cfg,
		log:    newLogger(cfg, os.Stderr),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	return a.execute(ctx, args)
}

func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	format := logger.WithTextFormatter()
	if cfg.LogFormat == "json" {
		format = logger.WithJSONFormatter()
	}
	return logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(w),
		format,
		logger.WithAttr(logger.Component("centrifugectl")),
	)
}

// execute runs one command. The Redis connection is opened only for commands
// that may reach the queue.
func (a *app) execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	name, rest := args[0], args[1:]

	switch name {
	case "help", "-h", "--help":
		return errUsage
	case "token", "connection", "sign":
		client, err := a.hubClient()
		if err != nil {
			return err
		}
		return a.runSigning(client, name, rest)
	}

	if _, ok := hubCommands[name]; !ok && name != "serve" {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	if a.cfg.Hub.RedisAPI && a.redis == nil {
		rc, err := redis.Connect(ctx, a.cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = rc.Close() }()
		a.redis = rc
	}

	client, err := a.hubClient()
	if err != nil {
		return err
	}

	if name == "serve" {
		return a.serve(ctx, client, rest)
	}
	return a.runHubCommand(ctx, client, name, rest)
}

func (a *app) hubClient() (*hub.Client, error) {
	opts := []hub.Option{hub.WithLogger(a.log)}
	if a.redis != nil {
		opts = append(opts, hub.WithRedis(a.redis))
	}
	return hub.New(a.cfg.Hub, opts...)
}
