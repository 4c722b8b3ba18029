// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.Development, "dsmcheck"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Warn("submission rejected",
//	    logger.Kind(records.KindBrief),
//	    logger.Source("brief.json"),
//	    logger.Violations(verrs),
//	)
//
// The default logger writes JSON at info level to stderr. WithEnvironment
// switches to text output at debug level for development.
package logger
