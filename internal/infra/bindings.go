package infra

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/leadsheet/internal/config"
	"github.com/Vovarama1992/leadsheet/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Connect builds both external clients concurrently. A client that cannot be
// built is left nil and logged; Connect itself never fails.
func Connect(ctx context.Context, cfg *config.Config, zl *logger.ZapLogger) domain.Bindings {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	var b domain.Bindings
	var g errgroup.Group

	g.Go(func() error {
		llm, err := NewGroqClient(cfg.Groq)
		if err != nil {
			warn(zl, "llm client unavailable", err)
			return nil
		}
		b.LLM = llm
		return nil
	})

	g.Go(func() error {
		sheet, err := NewGoogleSheet(ctx, cfg.Sheets)
		if err != nil {
			warn(zl, "spreadsheet unavailable", err)
			return nil
		}
		b.Sheet = sheet
		return nil
	})

	_ = g.Wait()

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "bindings ready",
		Fields: map[string]any{
			"ai_ready":         b.AIReady(),
			"sheets_connected": b.SheetsConnected(),
		},
	})

	return b
}

func warn(zl *logger.ZapLogger, msg string, err error) {
	zl.Log(logger.LogEntry{
		Level:   "warn",
		Message: msg,
		Error:   err,
	})
}
