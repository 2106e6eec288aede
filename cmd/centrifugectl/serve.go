package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/centrifuge/core/broadcaster"
	"github.com/dmitrymomot/centrifuge/core/health"
	"github.com/dmitrymomot/centrifuge/core/hub"
	"github.com/dmitrymomot/centrifuge/core/server"
	"github.com/dmitrymomot/centrifuge/integration/database/redis"
	"github.com/dmitrymomot/centrifuge/middleware"
)

type routerConfig struct {
	userHeader string
	allow      []string
	checks     []func(context.Context) error
}

func (a *app) serve(ctx context.Context, client *hub.Client, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	addr := fs.String("addr", a.cfg.Server.Addr, "listen address")
	userHeader := fs.String("user-header", "X-User-ID", "header carrying the authenticated user id")
	allow := fs.String("allow", "", "comma separated channel patterns users may join (default: all)")
	if err := fs.Parse(args); err != nil {
		return ignoreHelp(err)
	}

	rc := routerConfig{
		userHeader: *userHeader,
		allow:      splitList(*allow),
	}
	if a.redis != nil {
		rc.checks = append(rc.checks, redis.Healthcheck(a.redis))
	}

	srvCfg := a.cfg.Server
	srvCfg.Addr = *addr
	srv, err := server.NewFromConfig(srvCfg, server.WithLogger(a.log))
	if err != nil {
		return err
	}

	b := broadcaster.New(client, broadcaster.WithLogger(a.log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(gctx, newRouter(b, a.log, rc)))
	return g.Wait()
}

func newRouter(b *broadcaster.Broadcaster, log *slog.Logger, rc routerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggingWithConfig(middleware.LoggingConfig{
		Logger: log,
		Skip: func(r *http.Request) bool {
			return strings.HasPrefix(r.URL.Path, "/health/")
		},
	}))

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness(log, rc.checks...))
	r.Method(http.MethodPost, "/broadcasting/auth", b.AuthHandler(headerUser(rc.userHeader), allowPatterns(rc.allow)))

	return r
}

// headerUser trusts a header set by an authenticating proxy in front of the server.
func headerUser(header string) broadcaster.UserResolver {
	return func(r *http.Request) (string, bool) {
		user := r.Header.Get(header)
		return user, user != ""
	}
}

// allowPatterns grants channels matching any path.Match pattern.
// No patterns grant every channel.
func allowPatterns(patterns []string) broadcaster.AccessChecker {
	return func(_ context.Context, _, channel string) (bool, error) {
		if len(patterns) == 0 {
			return true, nil
		}
		for _, p := range patterns {
			ok, err := path.Match(p, channel)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}
