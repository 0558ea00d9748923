// Package log provides the logging abstraction shared by eegsift packages.
//
// The codec in pkg/eeg reports recoverable decoding anomalies through the
// Logger interface rather than printing, so the same code serves the CLI
// (zerolog console output) and embedders with their own logging setup.
//
// Two implementations ship with the module:
//
//	logger := log.NewZerologAdapter() // console output on stderr
//	logger := log.NewNoopLogger()     // discard everything (tests)
//
// Any other logging library can be plugged in by implementing the four
// leveled methods.
package log
