// Package logger builds the application's zap logger.
//
// Level and encoding come from Config (bound from the log.* settings). The debug
// level selects zap's development preset; any other level uses the production
// preset. Format "console" switches to colored human-readable output.
//
// Request handlers use WithRayID to tag entries with the request's ray ID, and
// session-scoped code uses WithSession.
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
