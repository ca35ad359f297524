package validators

import (
	"strings"

	dto "task-manager.com/task-manager/internal/data_models"
	errs "task-manager.com/task-manager/internal/errors"
)

// ValidateCreateTaskRequest normalizes the request in place: both fields are
// trimmed and a missing description stays "".
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return errs.NewValidation("title is required")
	}
	r.Description = strings.TrimSpace(r.Description)
	return nil
}
