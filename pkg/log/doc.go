// Package log provides the structured logging abstraction used by rlcalc.
//
// Components depend on the Logger interface only. The zerolog adapter is
// wired in by the command; tests and library callers that want silence
// use NoopLogger.
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("circuit solved", log.Float64("impedance_ohm", r.ImpedanceMagnitude))
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log
