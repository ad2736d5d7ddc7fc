package repository

import (
	"errors"
	"time"

	"chomper-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTemplateRepository implements TemplateRepository using GORM
type gormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GORM-based TemplateRepository
func NewGormTemplateRepository(db *gorm.DB) TemplateRepository {
	return &gormTemplateRepository{db: db}
}

func (r *gormTemplateRepository) WithTx(tx *gorm.DB) TemplateRepository {
	return &gormTemplateRepository{db: tx}
}

func (r *gormTemplateRepository) Create(template *domain.RecurringTemplate) error {
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	template.CreatedAt = time.Now()
	template.UpdatedAt = time.Now()
	return r.db.Create(template).Error
}

func (r *gormTemplateRepository) FindByID(id string) (*domain.RecurringTemplate, error) {
	var template domain.RecurringTemplate
	err := r.db.Where("id = ?", id).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *gormTemplateRepository) FindByUserID(userID string) ([]*domain.RecurringTemplate, error) {
	var templates []*domain.RecurringTemplate
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&templates).Error
	return templates, err
}

func (r *gormTemplateRepository) ListActive() ([]*domain.RecurringTemplate, error) {
	var templates []*domain.RecurringTemplate
	err := r.db.Where("active = ?", true).Find(&templates).Error
	return templates, err
}

func (r *gormTemplateRepository) Update(template *domain.RecurringTemplate) error {
	template.UpdatedAt = time.Now()
	return r.db.Save(template).Error
}

func (r *gormTemplateRepository) Delete(id string) error {
	return r.db.Delete(&domain.RecurringTemplate{}, "id = ?", id).Error
}
