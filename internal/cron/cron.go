package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/socket"
)

// Scheduler handles scheduled background jobs
type Scheduler struct {
	cron         *cron.Cron
	invRepo      repository.InvitationRepository
	calendarRepo repository.CalendarRepository
	broadcaster  *socket.Broadcaster
}

// NewScheduler creates a new scheduler
func NewScheduler(invRepo repository.InvitationRepository, calendarRepo repository.CalendarRepository, broadcaster *socket.Broadcaster) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		invRepo:      invRepo,
		calendarRepo: calendarRepo,
		broadcaster:  broadcaster,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every day at 3 AM - Remove expired pending invitations
	s.cron.AddFunc("0 3 * * *", func() {
		log.Println("[Cron] Running expired invitation cleanup...")
		s.cleanupExpiredInvitations()
	})

	// Run every hour - Posting reminders for content scheduled soon
	s.cron.AddFunc("0 * * * *", func() {
		log.Println("[Cron] Running posting reminder check...")
		s.sendPostingReminders()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

// cleanupExpiredInvitations removes pending invitations past their
// expiry. Expired invitations are deleted rather than flipped to a
// stored state, so a stale token simply stops resolving.
func (s *Scheduler) cleanupExpiredInvitations() {
	ctx := context.Background()

	count, err := s.invRepo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("[Cron] Error deleting expired invitations: %v", err)
		return
	}
	if count > 0 {
		log.Printf("[Cron] Deleted %d expired invitations", count)
	}
}

// sendPostingReminders notifies workspace rooms about content
// scheduled to go out within the next 24 hours.
func (s *Scheduler) sendPostingReminders() {
	ctx := context.Background()

	now := time.Now()
	events, err := s.calendarRepo.FindScheduledBetween(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		log.Printf("[Cron] Error finding upcoming events: %v", err)
		return
	}

	for _, event := range events {
		if event.ScheduledAt == nil {
			continue
		}
		if s.broadcaster != nil {
			s.broadcaster.PostingReminder(event.WorkspaceID, event.ID, event.Title,
				event.ScheduledAt.Format(time.RFC3339))
		}
	}
	if len(events) > 0 {
		log.Printf("[Cron] Sent posting reminders for %d events", len(events))
	}
}
