package usecase

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"chomper-backend/internal/apperr"
	progressdomain "chomper-backend/internal/progress/domain"
	progressrepo "chomper-backend/internal/progress/repository"
	progressusecase "chomper-backend/internal/progress/usecase"
	"chomper-backend/internal/task/domain"
	"chomper-backend/internal/task/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	tasks     TaskUsecase
	templates TemplateUsecase
	taskRepo  repository.TaskRepository
	tplRepo   repository.TemplateRepository
	clock     *fakeClock
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) AdvanceDays(d int) { c.now = c.now.AddDate(0, 0, d) }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&domain.Task{},
		&domain.RecurringTemplate{},
		&progressdomain.ProgressStats{},
		&progressdomain.Achievement{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)
	clock := &fakeClock{now: time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)}

	taskRepo := repository.NewGormTaskRepository(db)
	tplRepo := repository.NewGormTemplateRepository(db)
	statsRepo := progressrepo.NewGormStatsRepository(db)
	achRepo := progressrepo.NewGormAchievementRepository(db)
	accountant := progressusecase.NewProgressUsecase(statsRepo, achRepo)

	tasks := NewTaskUsecase(db, taskRepo, accountant).(*taskUsecase)
	tasks.now = clock.Now
	templates := NewTemplateUsecase(db, tplRepo, taskRepo).(*templateUsecase)
	templates.now = clock.Now

	return &fixture{
		db:        db,
		tasks:     tasks,
		templates: templates,
		taskRepo:  taskRepo,
		tplRepo:   tplRepo,
		clock:     clock,
	}
}

func (f *fixture) mustCreateTask(t *testing.T, userID, title string) *domain.Task {
	t.Helper()
	task, err := f.tasks.CreateTask(userID, CreateTaskRequest{Title: title})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	return task
}

func (f *fixture) stats(t *testing.T, userID string) *progressdomain.ProgressStats {
	t.Helper()
	var stats progressdomain.ProgressStats
	if err := f.db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		t.Fatalf("load stats: %v", err)
	}
	return &stats
}

func TestCompleteTaskSetsCompletedAtAndRatchetsStats(t *testing.T) {
	f := newFixture(t)
	task := f.mustCreateTask(t, "user-1", "water plants")

	updated, unlocked, err := f.tasks.CompleteTask("user-1", task.ID)
	if err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	if !updated.Completed || updated.CompletedAt == nil {
		t.Fatalf("task not marked completed: %+v", updated)
	}
	if len(unlocked) == 0 {
		t.Fatal("first completion should unlock first_chomp")
	}

	stats := f.stats(t, "user-1")
	if stats.TasksChomped != 1 || stats.CurrentStreak != 1 {
		t.Fatalf("stats = %+v, want chomped 1 streak 1", stats)
	}
}

func TestCompleteTaskAlreadyCompletedIsNoOp(t *testing.T) {
	f := newFixture(t)
	task := f.mustCreateTask(t, "user-1", "water plants")

	if _, _, err := f.tasks.CompleteTask("user-1", task.ID); err != nil {
		t.Fatalf("first CompleteTask failed: %v", err)
	}
	if _, _, err := f.tasks.CompleteTask("user-1", task.ID); err != nil {
		t.Fatalf("second CompleteTask failed: %v", err)
	}

	stats := f.stats(t, "user-1")
	if stats.TasksChomped != 1 {
		t.Fatalf("tasksChomped = %d, want 1 (no double counting)", stats.TasksChomped)
	}
}

func TestCompleteTaskHidesOtherUsersTasks(t *testing.T) {
	f := newFixture(t)
	task := f.mustCreateTask(t, "user-1", "water plants")

	_, _, err := f.tasks.CompleteTask("user-2", task.ID)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign task, got %v", err)
	}
}

func TestUncompleteClearsCompletedAtButKeepsStats(t *testing.T) {
	f := newFixture(t)
	task := f.mustCreateTask(t, "user-1", "water plants")

	if _, _, err := f.tasks.CompleteTask("user-1", task.ID); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	before := f.stats(t, "user-1")

	reverted, err := f.tasks.UncompleteTask("user-1", task.ID)
	if err != nil {
		t.Fatalf("UncompleteTask failed: %v", err)
	}
	if reverted.Completed || reverted.CompletedAt != nil {
		t.Fatalf("task not reverted: %+v", reverted)
	}

	after := f.stats(t, "user-1")
	if after.TasksChomped != before.TasksChomped ||
		after.CurrentStreak != before.CurrentStreak ||
		after.LongestStreak != before.LongestStreak ||
		after.HappinessLevel != before.HappinessLevel {
		t.Fatalf("stats changed on revert: before %+v after %+v", before, after)
	}
}

func TestRecompletingAfterRevertCountsAgain(t *testing.T) {
	f := newFixture(t)
	task := f.mustCreateTask(t, "user-1", "water plants")

	f.tasks.CompleteTask("user-1", task.ID)
	f.tasks.UncompleteTask("user-1", task.ID)
	f.tasks.CompleteTask("user-1", task.ID)

	stats := f.stats(t, "user-1")
	if stats.TasksChomped != 2 {
		t.Fatalf("tasksChomped = %d, want 2 (ratchet counts each completion)", stats.TasksChomped)
	}
}

func TestClearCompletedSkipsTemplateInstances(t *testing.T) {
	f := newFixture(t)

	oneOff := f.mustCreateTask(t, "user-1", "one-off")
	f.tasks.CompleteTask("user-1", oneOff.ID)

	tpl, err := f.templates.CreateTemplate("user-1", CreateTemplateRequest{
		Title:            "daily chore",
		RecurringPattern: "daily",
	})
	if err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	instance, err := f.taskRepo.FindActiveByTemplate(tpl.ID, "user-1")
	if err != nil || instance == nil {
		t.Fatalf("expected materialized instance, got %v, %v", instance, err)
	}
	f.tasks.CompleteTask("user-1", instance.ID)

	deleted, err := f.tasks.ClearCompleted("user-1")
	if err != nil {
		t.Fatalf("ClearCompleted failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1 (template instance kept)", deleted)
	}

	kept, err := f.taskRepo.FindByID(instance.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if kept == nil {
		t.Fatal("completed template instance was swept by bulk-clear")
	}
}

func TestDailyChainScenario(t *testing.T) {
	f := newFixture(t)

	// Day 0: create a daily template; one instance is due today.
	tpl, err := f.templates.CreateTemplate("user-1", CreateTemplateRequest{
		Title:            "write journal",
		RecurringPattern: "daily",
	})
	if err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	day0, err := f.taskRepo.FindActiveByTemplate(tpl.ID, "user-1")
	if err != nil || day0 == nil {
		t.Fatalf("expected day-0 instance, got %v, %v", day0, err)
	}
	if !day0.Visible(f.clock.Now()) {
		t.Fatal("day-0 instance should be visible immediately")
	}

	if _, _, err := f.tasks.CompleteTask("user-1", day0.ID); err != nil {
		t.Fatalf("complete day 0 failed: %v", err)
	}
	stats := f.stats(t, "user-1")
	if stats.TasksChomped != 1 || stats.CurrentStreak != 1 {
		t.Fatalf("day-0 stats = %+v, want chomped 1 streak 1", stats)
	}

	// Day 1: regeneration produces exactly one new instance; the completed
	// day-0 row is untouched.
	f.clock.AdvanceDays(1)
	reloaded, err := f.tplRepo.FindByID(tpl.ID)
	if err != nil {
		t.Fatalf("reload template: %v", err)
	}
	if !reloaded.ShouldRegenerate(f.clock.Now()) {
		t.Fatal("daily template should regenerate on day 1")
	}
	day1, err := f.templates.Materialize(reloaded, f.clock.Now())
	if err != nil {
		t.Fatalf("materialize day 1 failed: %v", err)
	}
	if day1 == nil || day1.ID == day0.ID {
		t.Fatalf("expected a fresh day-1 instance, got %+v", day1)
	}

	var count int64
	f.db.Model(&domain.Task{}).Where("template_id = ?", tpl.ID).Count(&count)
	if count != 2 {
		t.Fatalf("instance count = %d, want 2", count)
	}
	old, _ := f.taskRepo.FindByID(day0.ID)
	if old == nil || !old.Completed {
		t.Fatal("day-0 instance should remain completed")
	}

	if _, _, err := f.tasks.CompleteTask("user-1", day1.ID); err != nil {
		t.Fatalf("complete day 1 failed: %v", err)
	}
	stats = f.stats(t, "user-1")
	if stats.CurrentStreak != 2 || stats.LongestStreak != 2 {
		t.Fatalf("day-1 stats = %+v, want streak 2/2", stats)
	}
}
