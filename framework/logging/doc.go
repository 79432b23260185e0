// Package logging holds the Logger bound under "log" and used by the Log
// facade.
//
//	// Laravel: Log::info('Hello')
//	facades.Log.Log("Hello")
//
// Channels (LOG_CHANNEL):
//   - stdout: one plain line per message
//   - file:   "2006/01/02 15:04:05: message" appended to LOG_PATH
//   - json:   log/slog JSON handler
//   - zap:    zap production logger
package logging
