package validators

import (
	"testing"

	dto "task-manager.com/task-manager/internal/data_models"
)

func TestValidateCreateTaskRequest(t *testing.T) {
	req := dto.CreateTaskRequest{Title: "  Buy milk  ", Description: " two liters "}
	if err := ValidateCreateTaskRequest(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title != "Buy milk" || req.Description != "two liters" {
		t.Errorf("expected trimmed fields, got %+v", req)
	}

	for _, title := range []string{"", "   ", "\t\n"} {
		req := dto.CreateTaskRequest{Title: title}
		err := ValidateCreateTaskRequest(&req)
		if err == nil || err.Error() != "title is required" {
			t.Errorf("title %q: expected rejection, got %v", title, err)
		}
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{})
	if err == nil || err.Error() != "Enter at least one field to update" {
		t.Errorf("expected empty update to be rejected, got %v", err)
	}

	empty := "   "
	err = ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Title: &empty})
	if err == nil || err.Error() != "title is required" {
		t.Errorf("expected blank title to be rejected, got %v", err)
	}

	title := " New title "
	description := " notes "
	req := dto.UpdateTaskRequest{Title: &title, Description: &description}
	if err := ValidateUpdateTaskRequest(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *req.Title != "New title" || *req.Description != "notes" {
		t.Errorf("expected trimmed fields, got %q %q", *req.Title, *req.Description)
	}

	// description alone may be cleared
	blank := ""
	if err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Description: &blank}); err != nil {
		t.Errorf("expected empty description to pass, got %v", err)
	}
}
