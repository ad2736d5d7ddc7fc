package usecase

import (
	"time"

	"chomper-backend/internal/apperr"
	progressdomain "chomper-backend/internal/progress/domain"
	progressusecase "chomper-backend/internal/progress/usecase"
	"chomper-backend/internal/task/domain"
	"chomper-backend/internal/task/repository"

	"gorm.io/gorm"
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	db         *gorm.DB
	taskRepo   repository.TaskRepository
	accountant progressusecase.ProgressUsecase
	now        func() time.Time
}

// NewTaskUsecase creates a new TaskUsecase
func NewTaskUsecase(db *gorm.DB, taskRepo repository.TaskRepository, accountant progressusecase.ProgressUsecase) TaskUsecase {
	return &taskUsecase{
		db:         db,
		taskRepo:   taskRepo,
		accountant: accountant,
		now:        time.Now,
	}
}

func (u *taskUsecase) GetTasks(userID string) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindVisibleByUserID(userID, u.now())
	if err != nil {
		return nil, apperr.WrapStore("tasks", "list", err)
	}
	return tasks, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	return u.findOwned(u.taskRepo, userID, taskID)
}

func (u *taskUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error) {
	task := &domain.Task{
		UserID:   userID,
		Title:    req.Title,
		Notes:    req.Notes,
		Category: req.Category,
		Priority: domain.Priority(req.Priority),
		DueDate:  req.DueDate,
	}
	if task.Category == "" {
		task.Category = "personal"
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, apperr.WrapStore("task", "create", err)
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, req TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.findOwned(u.taskRepo, userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Priority != nil {
		task.Priority = domain.Priority(*req.Priority)
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, apperr.WrapStore("task", "update", err)
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.findOwned(u.taskRepo, userID, taskID)
	if err != nil {
		return err
	}
	if err := u.taskRepo.Delete(task.ID); err != nil {
		return apperr.WrapStore("task", "delete", err)
	}
	return nil
}

func (u *taskUsecase) ClearCompleted(userID string) (int64, error) {
	count, err := u.taskRepo.DeleteCompletedOneOff(userID)
	if err != nil {
		return 0, apperr.WrapStore("tasks", "clear completed", err)
	}
	return count, nil
}

// CompleteTask flips completed false→true and applies the progress ratchet.
// The task write and the stats/achievement writes commit or roll back
// together, so a failure leaves everything untouched. Completing an
// already-completed task is a no-op.
func (u *taskUsecase) CompleteTask(userID, taskID string) (*domain.Task, []*progressdomain.Achievement, error) {
	var (
		task     *domain.Task
		unlocked []*progressdomain.Achievement
	)

	err := u.db.Transaction(func(tx *gorm.DB) error {
		repo := u.taskRepo.WithTx(tx)

		t, err := u.findOwned(repo, userID, taskID)
		if err != nil {
			return err
		}
		if t.Completed {
			task = t
			return nil
		}

		now := u.now()
		t.Completed = true
		t.CompletedAt = &now
		if err := repo.Update(t); err != nil {
			return apperr.WrapStore("task", "complete", err)
		}

		_, newly, err := u.accountant.RecordCompletion(tx, userID, now)
		if err != nil {
			return err
		}

		task = t
		unlocked = newly
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return task, unlocked, nil
}

// UncompleteTask reverts the checkbox. Stats stay where they are: completions
// ratchet progress upward and undo never takes it back.
func (u *taskUsecase) UncompleteTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.findOwned(u.taskRepo, userID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Completed {
		return task, nil
	}

	task.Completed = false
	task.CompletedAt = nil
	if err := u.taskRepo.Update(task); err != nil {
		return nil, apperr.WrapStore("task", "uncomplete", err)
	}
	return task, nil
}

// findOwned loads a task and checks ownership. A task owned by someone else
// reads as absent.
func (u *taskUsecase) findOwned(repo repository.TaskRepository, userID, taskID string) (*domain.Task, error) {
	task, err := repo.FindByID(taskID)
	if err != nil {
		return nil, apperr.WrapStore("task", "load", err)
	}
	if task == nil || task.UserID != userID {
		return nil, apperr.NotFound("task")
	}
	return task, nil
}
