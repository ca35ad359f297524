package http

import (
	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, h *Handler) {
	e.HTTPErrorHandler = ErrorHandler()

	e.GET("/health", h.Health)

	tasks := e.Group("/tasks")
	tasks.GET("", h.ListTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.POST("", h.CreateTask)
	tasks.PATCH("/:id", h.UpdateTask)
	tasks.PATCH("/:id/complete", h.CompleteTask)
	tasks.PATCH("/:id/uncomplete", h.UncompleteTask)
	tasks.DELETE("/:id", h.DeleteTask)
	tasks.POST("/import", h.ImportTasks)
}
