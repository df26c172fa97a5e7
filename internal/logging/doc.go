// Package logging constructs the application's slog loggers.
//
// Two output formats are supported: a human-oriented console format
// (TIME LEVEL component: msg key=value) and standard slog JSON. Component
// loggers carry a "component" attribute which the console handler lifts into
// the line prefix.
package logging
