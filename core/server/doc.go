// Package server runs the HTTP endpoints the hub calls back into (channel
// auth and health probes) with graceful shutdown.
//
// Run returns a function for errgroup so the server stops with its context:
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Config is loaded from SERVER_* environment variables through core/config.
package server
