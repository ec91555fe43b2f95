package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/telewatch/telewatch/internal/domain/evaluation"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/pkg/logger"
)

// Scheduler runs periodic evaluation sweeps across all tenants that have at
// least one enabled alert rule. Tenant failures are isolated: one tenant's
// evaluation error never aborts the sweep for the others.
type Scheduler struct {
	cron    *cron.Cron
	eval    evaluation.Service
	rules   rule.Repository
	logger  *logger.Logger
	spec    string
	timeout time.Duration
}

// NewScheduler creates a scheduler with the given cron spec (standard five
// field syntax, e.g. "*/1 * * * *").
func NewScheduler(eval evaluation.Service, rules rule.Repository, spec string, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		eval:    eval,
		rules:   rules,
		logger:  log,
		spec:    spec,
		timeout: 2 * time.Minute,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Infof("Evaluation scheduler started (schedule %q)", s.spec)
	return nil
}

// Stop stops the cron loop and waits for any running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Evaluation scheduler stopped")
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	tenants, err := s.rules.ListTenantsWithEnabled(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Sweep aborted: failed to list tenants")
		return
	}

	for _, tenantID := range tenants {
		report, err := s.eval.Run(ctx, tenantID)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{"tenant_id": tenantID}).
				ErrorWithErr(err, "Tenant evaluation failed")
			continue
		}
		s.logger.WithFields(map[string]interface{}{
			"tenant_id":       tenantID,
			"rules_evaluated": report.RulesEvaluated,
			"events_created":  report.EventsCreated,
		}).Debug("Tenant evaluation completed")
	}
}
