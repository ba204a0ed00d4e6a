package monitor

import (
	"context"

	"github.com/KNICEX/pair-watcher/internal/schedule"
)

type PairMonitorTask struct {
	pairSvc PairService
}

func NewPairMonitorTask(pairSvc PairService) schedule.Task {
	return &PairMonitorTask{
		pairSvc: pairSvc,
	}
}

func (t *PairMonitorTask) Run(ctx context.Context) error {
	return t.pairSvc.Scan(ctx)
}

func (t *PairMonitorTask) Name() string {
	return "new pair monitor task"
}
