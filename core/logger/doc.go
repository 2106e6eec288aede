// Package logger provides slog construction and attribute helpers shared by
// the hub client, the broadcaster and the operator CLI.
//
// # Creating a logger
//
//	log := logger.New(
//		logger.WithDevelopment("centrifugectl"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log := logger.New(
//		logger.WithProduction("billing-api"),
//		logger.WithAttr(slog.String("region", "eu-west-1")),
//	)
//
// Development uses the text handler at debug level, production the JSON
// handler at info level. Both write to stdout unless WithOutput is given.
//
// # Attributes
//
// Helpers return an empty slog.Attr for zero inputs, so they can be passed
// unconditionally:
//
//	log.ErrorContext(ctx, "hub command failed",
//		logger.HubMethod("publish"),
//		logger.Transport("queue"),
//		logger.Error(err), // dropped when err is nil
//	)
package logger
