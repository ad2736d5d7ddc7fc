package repository

import (
	"errors"
	"time"

	"chomper-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) WithTx(tx *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: tx}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindVisibleByUserID(userID string, now time.Time) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ? AND (scheduled_for IS NULL OR scheduled_for <= ?)", userID, now).
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}

func (r *gormTaskRepository) DeleteCompletedOneOff(userID string) (int64, error) {
	res := r.db.Where("user_id = ? AND completed = ? AND template_id IS NULL", userID, true).
		Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}

func (r *gormTaskRepository) FindActiveByTemplate(templateID, userID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("template_id = ? AND user_id = ? AND completed = ?", templateID, userID, false).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) DeleteByTemplate(templateID, userID string) (int64, error) {
	res := r.db.Where("template_id = ? AND user_id = ?", templateID, userID).
		Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}

func (r *gormTaskRepository) FindDueBetween(userID string, start, end time.Time) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ? AND completed = ? AND due_date >= ? AND due_date < ?",
		userID, false, start, end).Find(&tasks).Error
	return tasks, err
}
