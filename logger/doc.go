// Package logger provides structured logging on top of zerolog.
//
// It supports JSON and console output, level configuration, component-scoped
// loggers and request-scoped fields carried on the context.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("transcript")
//	log.WithContext(ctx).Info("transcript resolved", logger.Fields("job_id", id))
package logger
