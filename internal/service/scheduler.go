package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// schedulerRunTimeout bounds one full scheduler pass.
const schedulerRunTimeout = 30 * time.Minute

// SyncScheduler periodically syncs every connected credential. Runs are
// strictly sequential: one credential at a time, matching the engine's
// no-interleaving contract for a given (user, provider).
type SyncScheduler struct {
	creds    CredentialRepository
	sync     *SyncService
	logger   *zap.Logger
	schedule string
	cron     *cron.Cron
}

// NewSyncScheduler creates a scheduler with a cron schedule expression
// such as "@every 6h".
func NewSyncScheduler(creds CredentialRepository, sync *SyncService, logger *zap.Logger, schedule string) *SyncScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncScheduler{
		creds:    creds,
		sync:     sync,
		logger:   logger,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the schedule and begins running.
func (s *SyncScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runAll); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("sync scheduler started", zap.String("schedule", s.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (s *SyncScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *SyncScheduler) runAll() {
	ctx, cancel := context.WithTimeout(context.Background(), schedulerRunTimeout)
	defer cancel()

	creds, err := s.creds.ListConnected(ctx)
	if err != nil {
		s.logger.Error("scheduler: list connected credentials", zap.Error(err))
		return
	}

	now := time.Now()
	for i := range creds {
		cred := &creds[i]
		if cred.RequiresReauthorization(now) {
			// Syncing would only flip the credential into the reauth
			// state; the status endpoint already surfaces it.
			continue
		}
		result := s.sync.SyncRecords(ctx, cred.UserID, cred.Provider, nil, nil)
		if !result.Success() {
			s.logger.Warn("scheduled sync finished with errors",
				zap.Int64("user_id", cred.UserID),
				zap.String("provider", string(cred.Provider)),
				zap.Strings("errors", result.Errors))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
