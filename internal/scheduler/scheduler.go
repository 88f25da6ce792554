package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sign2voice/sign2voice/internal/repo"
)

// Run starts the retention purge: anonymous GUI sentences older than
// retentionDays are deleted on the given cron schedule. Blocks; run it in a
// goroutine. A non-positive retentionDays means nothing to do.
func Run(sentences *repo.SentenceRepo, retentionDays int, cronExpr string) {
	if retentionDays <= 0 {
		return
	}

	c := cron.New()
	_, err := c.AddFunc(cronExpr, func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		n, err := sentences.PurgeAnonymousOlderThan(context.Background(), cutoff)
		if err != nil {
			slog.Error("retention purge failed", "err", err)
			return
		}
		slog.Info("retention purge", "removed", n, "cutoff", cutoff)
	})
	if err != nil {
		slog.Error("retention: invalid cron expression", "cron", cronExpr, "err", err)
		return
	}

	slog.Info("retention purge scheduled", "cron", cronExpr, "retention_days", retentionDays)
	c.Run()
}
