package services

import (
	"context"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newService(t *testing.T) (*TaskService, *gorm.DB) {
	db := setupTestDB(t)
	return NewTaskService(repository.NewTaskRepository(db)), db
}

func countTasks(t *testing.T, db *gorm.DB) int64 {
	var count int64
	if err := db.Model(&model.Task{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count tasks: %v", err)
	}
	return count
}

func TestTaskService_CreateDefaults(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	task, err := service.Create(ctx, "Buy milk", "")
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if task.ID == "" {
		t.Error("expected task ID to be set")
	}
	if task.Completed {
		t.Error("expected completed to default to false")
	}
	if task.Description != "" {
		t.Errorf("expected empty description, got %q", task.Description)
	}
	if task.CreatedAt == "" || task.UpdatedAt != task.CreatedAt {
		t.Errorf("expected both timestamps set and equal, got %s / %s", task.CreatedAt, task.UpdatedAt)
	}
}

func TestTaskService_CreateMatchesStored(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	task, err := service.Create(ctx, "Buy milk", "two liters")
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	stored, err := service.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to fetch task: %v", err)
	}

	if *stored != *task {
		t.Errorf("returned record differs from stored record:\n  returned %+v\n  stored   %+v", task, stored)
	}
}

func TestTaskService_CreateUniqueIDs(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		task, err := service.Create(ctx, "Title", "")
		if err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestTaskService_ListClampsPagination(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	page, err := service.List(ctx, repository.ListFilter{Page: -3, PerPage: 0})
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if page.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", page.Page)
	}
	if page.PerPage != 20 {
		t.Errorf("expected perPage to default to 20, got %d", page.PerPage)
	}

	page, err = service.List(ctx, repository.ListFilter{Page: 1, PerPage: 5000})
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if page.PerPage != 100 {
		t.Errorf("expected perPage capped at 100, got %d", page.PerPage)
	}
}

func TestTaskService_ImportCSV(t *testing.T) {
	service, db := newService(t)

	var b strings.Builder
	b.WriteString("title,description\n")
	for i := 0; i < 5; i++ {
		b.WriteString("Task A,details\n")
	}
	b.WriteString(",missing title\n")
	for i := 0; i < 3; i++ {
		b.WriteString("Task B,\n")
	}
	b.WriteString("   ,whitespace title\n")

	result, err := service.ImportCSV(context.Background(), strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if result.Imported != 8 {
		t.Errorf("expected 8 imported, got %d", result.Imported)
	}
	if result.Rejected != 2 {
		t.Errorf("expected 2 rejected, got %d", result.Rejected)
	}
	if count := countTasks(t, db); count != 8 {
		t.Errorf("expected 8 rows in storage, found %d", count)
	}

	if len(result.SampleErrors) != 2 {
		t.Fatalf("expected 2 sample errors, got %d", len(result.SampleErrors))
	}
	if result.SampleErrors[0].Line != 6 || result.SampleErrors[1].Line != 10 {
		t.Errorf("unexpected error lines: %+v", result.SampleErrors)
	}
	for _, rowErr := range result.SampleErrors {
		if rowErr.Error != "title is required" {
			t.Errorf("unexpected error message %q", rowErr.Error)
		}
	}
}

func TestTaskService_ImportCSVNoValidRows(t *testing.T) {
	service, db := newService(t)

	var b strings.Builder
	b.WriteString("title,description\n")
	for i := 0; i < 7; i++ {
		b.WriteString(",no title here\n")
	}

	result, err := service.ImportCSV(context.Background(), strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if result.Imported != 0 {
		t.Errorf("expected 0 imported, got %d", result.Imported)
	}
	if result.Rejected != 7 {
		t.Errorf("expected 7 rejected, got %d", result.Rejected)
	}
	if len(result.SampleErrors) != 5 {
		t.Errorf("expected sample errors capped at 5, got %d", len(result.SampleErrors))
	}
	if count := countTasks(t, db); count != 0 {
		t.Errorf("expected no rows in storage, found %d", count)
	}
}

func TestTaskService_ImportCSVTolerance(t *testing.T) {
	service, db := newService(t)

	// BOM prefix, padded fields, a blank line, and a row missing the
	// description column.
	input := "\uFEFFtitle,description\n  Task one  , padded \n\nTask two\n"

	result, err := service.ImportCSV(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if result.Imported != 2 || result.Rejected != 0 {
		t.Fatalf("expected 2 imported and 0 rejected, got %d/%d", result.Imported, result.Rejected)
	}
	if count := countTasks(t, db); count != 2 {
		t.Errorf("expected 2 rows in storage, found %d", count)
	}

	var task model.Task
	if err := db.First(&task, "title = ?", "Task one").Error; err != nil {
		t.Fatalf("trimmed row not found: %v", err)
	}
	if task.Description != "padded" {
		t.Errorf("expected trimmed description, got %q", task.Description)
	}
	if task.Completed {
		t.Error("imported rows must default to not completed")
	}
}

func TestTaskService_ImportCSVEmptyStream(t *testing.T) {
	service, db := newService(t)

	result, err := service.ImportCSV(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if result.Imported != 0 || result.Rejected != 0 {
		t.Errorf("expected empty report, got %+v", result)
	}
	if result.SampleErrors == nil || len(result.SampleErrors) != 0 {
		t.Errorf("expected empty (non-nil) sampleErrors, got %+v", result.SampleErrors)
	}
	if count := countTasks(t, db); count != 0 {
		t.Errorf("expected no rows in storage, found %d", count)
	}
}

func TestTaskService_ImportCSVMalformedStream(t *testing.T) {
	service, db := newService(t)

	input := "title,description\nGood row,ok\n\"broken quote,oops\n"

	_, err := service.ImportCSV(context.Background(), strings.NewReader(input))
	if err == nil {
		t.Fatal("expected a malformed stream to abort the import")
	}
	if count := countTasks(t, db); count != 0 {
		t.Errorf("aborted import must not persist rows, found %d", count)
	}
}
