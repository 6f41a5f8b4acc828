package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/bagritech/studio-api/internal/service"
)

// VeilleRefreshJob re-runs the competitive analysis on a cron schedule so the
// team's dashboard does not go stale between manual refreshes.
type VeilleRefreshJob struct {
	vs service.VeilleService
}

func NewVeilleRefreshJob(vs service.VeilleService) *VeilleRefreshJob {
	return &VeilleRefreshJob{vs: vs}
}

func (j *VeilleRefreshJob) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	items, err := j.vs.Refresh(ctx)
	if err != nil {
		slog.Info("scheduled veille refresh failed: " + err.Error())
		return
	}
	slog.Info("veille refreshed", "institutions", len(items))
}
