// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a sane console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Infof, ErrorKV, etc.).
//
// Code that has a context extracts the logger from it, enabling scoped,
// structured logging; the watch face itself holds a named logger because
// the host dispatch carries no context.
package logger
