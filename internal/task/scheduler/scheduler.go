package scheduler

import (
	"context"
	"log"
	"time"

	"chomper-backend/internal/notification"
	taskrepo "chomper-backend/internal/task/repository"
	taskusecase "chomper-backend/internal/task/usecase"
	userrepo "chomper-backend/internal/user/repository"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the per-minute background tick: a notification pass on
// every tick and a regeneration pass once per day at local midnight. Ticks
// never overlap; a tick still running when the next fires makes the next one
// a skip, not a queue entry.
type Scheduler struct {
	cron         *cron.Cron
	userRepo     userrepo.UserRepository
	taskRepo     taskrepo.TaskRepository
	templateRepo taskrepo.TemplateRepository
	templates    taskusecase.TemplateUsecase
	notify       *notification.Service
	now          func() time.Time
}

// New creates a scheduler wired to the given repositories and dispatcher.
func New(
	userRepo userrepo.UserRepository,
	taskRepo taskrepo.TaskRepository,
	templateRepo taskrepo.TemplateRepository,
	templates taskusecase.TemplateUsecase,
	notify *notification.Service,
) *Scheduler {
	s := &Scheduler{
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		templateRepo: templateRepo,
		templates:    templates,
		notify:       notify,
		now:          time.Now,
	}
	s.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	return s
}

// Start begins the tick loop. The first notification pass runs synchronously
// before the cron starts; only then can ticks fire, so the startup pass never
// overlaps one.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every 1m", func() {
		s.RunTick(s.now())
	}); err != nil {
		return err
	}

	log.Println("[Scheduler] Starting (tick interval: 1 minute)")
	s.NotificationPass(s.now())
	s.cron.Start()
	return nil
}

// Stop halts the loop and waits for an in-flight tick to finish. No tick
// fires after Stop returns.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[Scheduler] Stopped")
}

// RunTick executes one scheduler tick at the given instant.
func (s *Scheduler) RunTick(now time.Time) {
	s.NotificationPass(now)

	// Regeneration happens once per day, on the tick where the process-local
	// clock reads midnight.
	if now.Format("15:04") == "00:00" {
		s.RegenerationPass(now)
	}
}

// NotificationPass dispatches the daily reminder to every user whose local
// clock matches their configured notification time this minute. A failure for
// one user never stops the pass for the rest.
func (s *Scheduler) NotificationPass(now time.Time) {
	if s.notify == nil || !s.notify.Enabled() {
		return
	}

	users, err := s.userRepo.ListWithNotificationsEnabled()
	if err != nil {
		log.Printf("[Scheduler] Error listing users for notifications: %v", err)
		return
	}

	for _, user := range users {
		loc, err := time.LoadLocation(user.Timezone)
		if err != nil {
			log.Printf("[Scheduler] Unknown timezone %q for user %s, using UTC", user.Timezone, user.ID)
			loc = time.UTC
		}

		local := now.In(loc)
		if local.Format("15:04") != user.NotificationTime {
			continue
		}

		dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		dayEnd := dayStart.AddDate(0, 0, 1)
		due, err := s.taskRepo.FindDueBetween(user.ID, dayStart, dayEnd)
		if err != nil {
			log.Printf("[Scheduler] Error counting due tasks for user %s: %v", user.ID, err)
			continue
		}

		payload := notification.ContentForCount(len(due))
		sent, err := s.notify.Dispatch(context.Background(), user.ID, payload)
		if err != nil {
			log.Printf("[Scheduler] Error dispatching notification to user %s: %v", user.ID, err)
			continue
		}
		log.Printf("[Scheduler] Sent daily notification to user %s (%d deliveries, %d tasks due)", user.ID, sent, len(due))
	}
}

// RegenerationPass materializes a fresh instance for every active template
// whose schedule lands on today. Failures are isolated per template; a
// skipped template gets retried on the next day's pass.
func (s *Scheduler) RegenerationPass(now time.Time) {
	templates, err := s.templateRepo.ListActive()
	if err != nil {
		log.Printf("[Scheduler] Error listing active templates: %v", err)
		return
	}

	regenerated := 0
	for _, template := range templates {
		if !template.ShouldRegenerate(now) {
			continue
		}
		if _, err := s.templates.Materialize(template, now); err != nil {
			log.Printf("[Scheduler] Error materializing template %s: %v", template.ID, err)
			continue
		}
		regenerated++
	}
	if regenerated > 0 {
		log.Printf("[Scheduler] Regenerated %d recurring task(s)", regenerated)
	}
}
