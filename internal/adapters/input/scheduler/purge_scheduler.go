package scheduler

import (
	"context"
	"time"

	"weather-insight/internal/ports/input"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const (
	defaultIntervalMinutes = 15
	jobTimeout             = 30 * time.Second
)

// PurgeScheduler periodically drops credentials of abandoned sessions.
type PurgeScheduler struct {
	scheduler *gocron.Scheduler
	service   input.CredentialPurgeService
	interval  time.Duration
}

// New creates a new PurgeScheduler.
func New(service input.CredentialPurgeService, interval time.Duration) *PurgeScheduler {
	return &PurgeScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
	}
}

// Start schedules the purge job and starts the underlying scheduler.
func (s *PurgeScheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = defaultIntervalMinutes
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.run)
	if err != nil {
		return err
	}

	logrus.Infof("Credential purge scheduled every %d minutes", minutes)
	s.scheduler.StartAsync()
	return nil
}

func (s *PurgeScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.service.PurgeExpired(ctx); err != nil {
		logrus.Errorf("Credential purge failed: %v", err)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *PurgeScheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
