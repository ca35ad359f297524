package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	errs "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/http/validators"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValidation("invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter := repository.ListFilter{
		Title:       c.QueryParam("title"),
		Description: c.QueryParam("description"),
		Page:        intQueryParam(c, "page"),
		PerPage:     intQueryParam(c, "perPage"),
	}

	page, err := h.taskService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValidation("invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), c.Param("id"), repository.UpdateFields{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CompleteTask(c echo.Context) error {
	return h.setCompleted(c, true)
}

func (h *Handler) UncompleteTask(c echo.Context) error {
	return h.setCompleted(c, false)
}

func (h *Handler) setCompleted(c echo.Context, completed bool) error {
	task, err := h.taskService.SetCompleted(c.Request().Context(), c.Param("id"), completed)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ImportTasks(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errs.ErrCSVFileRequired
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	result, err := h.taskService.ImportCSV(c.Request().Context(), file)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

// intQueryParam falls back to 0 for absent or non-numeric values; the
// service clamps 0 to its defaults.
func intQueryParam(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
