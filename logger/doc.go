// Package logger provides structured logging for the SDK, built on zerolog.
// It supports JSON and console output, component tagging, and a package-level
// global logger for quick use.
package logger
