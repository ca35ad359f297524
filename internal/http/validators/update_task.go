package validators

import (
	"strings"

	dto "task-manager.com/task-manager/internal/data_models"
	errs "task-manager.com/task-manager/internal/errors"
)

// ValidateUpdateTaskRequest enforces the create-rule constraints on every
// field that is present, and rejects requests carrying no recognized field.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title == nil && r.Description == nil {
		return errs.NewValidation("Enter at least one field to update")
	}

	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return errs.NewValidation("title is required")
		}
		*r.Title = title
	}

	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		*r.Description = description
	}

	return nil
}
