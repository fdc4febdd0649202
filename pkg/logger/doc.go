// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across packages.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the format,
// applies static attributes, and wraps the result in LogHandlerDecorator,
// which runs every registered ContextExtractor before a record is handled.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "passgame"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "phase evaluated",
//	    logger.Phase(3),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally:
//
//	log.Info("saved", logger.Error(err))
package logger
