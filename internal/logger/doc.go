// Package logger is a small levelled logger with structured key/value fields.
//
// Log lines go to stderr by default so that command reports on stdout are
// never interleaved with diagnostics:
//
//	log := logger.NewLogger(logger.LevelDebug, nil)
//	log.Debug("verifying", logger.F("module", "P"), logger.F("rank", 3))
//
// Output format:
//
//	2026-10-15 09:30:00 [DEBUG] verifying | module=P rank=3
package logger
