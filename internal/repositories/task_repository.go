package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	errs "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListFilter narrows a list query. Title and Description are substring
// filters, combined with AND; empty strings mean "no filter".
type ListFilter struct {
	Title       string
	Description string
	Page        int
	PerPage     int
}

// UpdateFields carries the partial-update field set. Nil means the field was
// not supplied.
type UpdateFields struct {
	Title       *string
	Description *string
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) List(ctx context.Context, filter ListFilter) (*model.TaskPage, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Title+"%")
	}
	if filter.Description != "" {
		query = query.Where("LOWER(description) LIKE LOWER(?)", "%"+filter.Description+"%")
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0)
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(filter.PerPage).
		Offset((filter.Page - 1) * filter.PerPage).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))

	return &model.TaskPage{
		Data:    tasks,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
		Pages:   pages,
	}, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies the supplied fields and refreshes updated_at. A call with
// no fields performs no write at all and returns the current record with
// updated_at untouched.
func (r *TaskRepository) Update(ctx context.Context, id string, fields UpdateFields) (*model.Task, error) {
	updates := map[string]interface{}{}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, id)
	}
	updates["updated_at"] = model.Now()

	res := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) SetCompleted(ctx context.Context, id string, completed bool) (*model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
		"completed":  completed,
		"updated_at": model.Now(),
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrTaskNotFound
	}
	return nil
}

// BulkInsert persists the batch in a single transaction: either every row is
// written or none are.
func (r *TaskRepository) BulkInsert(ctx context.Context, tasks []model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tasks).Error
	})
}
