package usecase

import (
	"time"

	"chomper-backend/internal/apperr"
	"chomper-backend/internal/task/domain"
	"chomper-backend/internal/task/repository"

	"gorm.io/gorm"
)

// templateUsecase implements TemplateUsecase
type templateUsecase struct {
	db           *gorm.DB
	templateRepo repository.TemplateRepository
	taskRepo     repository.TaskRepository
	now          func() time.Time
}

// NewTemplateUsecase creates a new TemplateUsecase
func NewTemplateUsecase(db *gorm.DB, templateRepo repository.TemplateRepository, taskRepo repository.TaskRepository) TemplateUsecase {
	return &templateUsecase{
		db:           db,
		templateRepo: templateRepo,
		taskRepo:     taskRepo,
		now:          time.Now,
	}
}

func (u *templateUsecase) CreateTemplate(userID string, req CreateTemplateRequest) (*domain.RecurringTemplate, error) {
	template := &domain.RecurringTemplate{
		UserID:           userID,
		Title:            req.Title,
		Category:         req.Category,
		Notes:            req.Notes,
		RecurringPattern: domain.RecurringPattern(req.RecurringPattern),
		DayOfWeek:        req.DayOfWeek,
		DayOfMonth:       req.DayOfMonth,
		Active:           true,
	}
	if template.Category == "" {
		template.Category = "personal"
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}

	if err := u.templateRepo.Create(template); err != nil {
		return nil, apperr.WrapStore("template", "create", err)
	}

	// First instance appears right away when the schedule lands on today,
	// otherwise it is created up front and stays hidden until its day.
	now := u.now()
	target := now
	if !template.DueToday(now) {
		target = template.NextOccurrence(now)
	}
	if _, err := u.Materialize(template, target); err != nil {
		return nil, err
	}
	return template, nil
}

func (u *templateUsecase) GetTemplates(userID string) ([]*domain.RecurringTemplate, error) {
	templates, err := u.templateRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperr.WrapStore("templates", "list", err)
	}
	return templates, nil
}

func (u *templateUsecase) UpdateTemplate(userID, templateID string, req TemplateUpdateRequest) (*domain.RecurringTemplate, error) {
	template, err := u.findOwned(userID, templateID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		template.Title = *req.Title
	}
	if req.Category != nil {
		template.Category = *req.Category
	}
	if req.Notes != nil {
		template.Notes = *req.Notes
	}
	if req.DayOfWeek != nil {
		template.DayOfWeek = req.DayOfWeek
	}
	if req.DayOfMonth != nil {
		template.DayOfMonth = req.DayOfMonth
	}
	if req.Active != nil {
		template.Active = *req.Active
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}

	if err := u.templateRepo.Update(template); err != nil {
		return nil, apperr.WrapStore("template", "update", err)
	}
	return template, nil
}

// DeleteTemplate removes the template together with every instance it
// spawned, completed ones included.
func (u *templateUsecase) DeleteTemplate(userID, templateID string) error {
	template, err := u.findOwned(userID, templateID)
	if err != nil {
		return err
	}

	return u.db.Transaction(func(tx *gorm.DB) error {
		if _, err := u.taskRepo.WithTx(tx).DeleteByTemplate(template.ID, userID); err != nil {
			return apperr.WrapStore("template tasks", "delete", err)
		}
		if err := u.templateRepo.WithTx(tx).Delete(template.ID); err != nil {
			return apperr.WrapStore("template", "delete", err)
		}
		return nil
	})
}

// Materialize turns the template into a concrete task instance due at the end
// of targetDate. It is a silent no-op returning the existing instance when an
// incomplete one is still around, and a silent no-op when an instance was
// already generated on targetDate's calendar day.
func (u *templateUsecase) Materialize(template *domain.RecurringTemplate, targetDate time.Time) (*domain.Task, error) {
	existing, err := u.taskRepo.FindActiveByTemplate(template.ID, template.UserID)
	if err != nil {
		return nil, apperr.WrapStore("template instance", "lookup", err)
	}
	if existing != nil {
		return existing, nil
	}

	if template.LastGeneratedAt != nil && domain.SameDay(*template.LastGeneratedAt, targetDate) {
		return nil, nil
	}

	dueDate := domain.EndOfDay(targetDate)
	scheduledFor := domain.Midnight(targetDate)
	pattern := template.RecurringPattern

	task := &domain.Task{
		UserID:           template.UserID,
		Title:            template.Title,
		Notes:            template.Notes,
		Category:         template.Category,
		Priority:         domain.PriorityMedium,
		DueDate:          &dueDate,
		IsRecurring:      true,
		RecurringPattern: &pattern,
		TemplateID:       &template.ID,
		ScheduledFor:     &scheduledFor,
	}

	err = u.db.Transaction(func(tx *gorm.DB) error {
		if err := u.taskRepo.WithTx(tx).Create(task); err != nil {
			return apperr.WrapStore("template instance", "create", err)
		}
		generatedAt := u.now()
		template.LastGeneratedAt = &generatedAt
		if err := u.templateRepo.WithTx(tx).Update(template); err != nil {
			return apperr.WrapStore("template", "stamp generation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (u *templateUsecase) findOwned(userID, templateID string) (*domain.RecurringTemplate, error) {
	template, err := u.templateRepo.FindByID(templateID)
	if err != nil {
		return nil, apperr.WrapStore("template", "load", err)
	}
	if template == nil || template.UserID != userID {
		return nil, apperr.NotFound("template")
	}
	return template, nil
}
