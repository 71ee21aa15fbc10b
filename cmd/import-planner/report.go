package main

import (
	"context"
	"log/slog"

	"import-planner/internal/diagnostic"
	"import-planner/internal/logging"
	"import-planner/internal/plan"
)

// newReporter logs each diagnostic at the level matching its severity.
func newReporter(log *logging.Logger) plan.Reporter {
	return plan.ReporterFunc(func(path string, diags diagnostic.Diagnostics) {
		for _, d := range diags.All() {
			log.Log(context.Background(), severityLevel(d.Severity), d.Message,
				"path", path, "code", d.Code, slog.Any("subject", d.Subject))
		}
	})
}

func severityLevel(s diagnostic.DiagnosticSeverity) slog.Level {
	switch s {
	case diagnostic.DiagnosticError:
		return slog.LevelError
	case diagnostic.DiagnosticWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
