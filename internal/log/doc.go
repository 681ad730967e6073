package log

// Package log configures the process-wide zerolog logger and hands out
// component-scoped child loggers to services and UI code.
