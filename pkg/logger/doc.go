// Package logger provides a slog factory with context-aware attribute
// injection.
//
// Extractors pull request-scoped values out of the context on every log
// call, so handlers deep in the stack get structured attributes for free:
//
//	log := logger.New(middlewares.LocaleExtractor())
//	log.InfoContext(ctx, "rendering page") // includes "locale":"en-US"
package logger
