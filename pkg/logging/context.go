package logging

import (
	"log/slog"
)

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("pager")
//	log.Debug("page allocated", "page", n)
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithTable creates a logger with table context.
func WithTable(tableName string) *slog.Logger {
	return GetLogger().With("table", tableName)
}

// WithPage creates a logger with page context.
func WithPage(pageNum uint32) *slog.Logger {
	return GetLogger().With("page", pageNum)
}

// WithError creates a logger carrying err as a structured field.
//
// Example:
//
//	logging.WithError(err).Error("statement failed", "line", line)
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
