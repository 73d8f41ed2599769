// Package logging provides a simple leveled logging interface for the
// photoscan tool.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the PHOTOSCAN_LOG_LEVEL environment
// variable, or programmatically with SetLevel (used by the --log-level flag).
package logging
