// Package logging provides a process-wide structured logger for rowstore.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. Every package
// obtains its logger here so that level and destination are controlled from
// main.
//
// # Initialisation
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug}); err != nil {
//	    log.Fatal(err)
//	}
//
// InitDefault writes WARN-level text logs to stderr. Stdout is reserved for
// the command protocol, so the default never targets it.
//
// # Context helpers
//
//	log := logging.WithComponent("table")
//	log := logging.WithPage(n)
//	log := logging.WithError(err)
package logging
