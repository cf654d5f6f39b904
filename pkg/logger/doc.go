// Package logger provides structured JSON logging for the seriesdesk core.
//
// It wraps Uber's Zap with a small, stable surface used by every other
// package in this module:
//
//	log := logger.NewLoggerClient(logger.NewConfig())
//	log.Info("series loaded", nil, map[string]interface{}{
//		"series_id": "a1b2",
//		"rows":      42,
//	})
//
// Each consuming package declares its own narrow Logger interface with the
// same method shapes, so tests can inject mocks without touching Zap.
//
// Configuration is read from the environment:
//
//	SERIESDESK_LOG_LEVEL=debug        # debug, info, warning, error
//	SERIESDESK_SERVICE_NAME=seriesdesk
//
// An fx module is provided for applications assembled with the fx dependency
// injection framework; it syncs buffered entries on shutdown.
package logger
