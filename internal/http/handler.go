package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "smart-todo.com/smart-todo/internal/data_models"
	apperrors "smart-todo.com/smart-todo/internal/errors"
	"smart-todo.com/smart-todo/internal/http/validators"
	"smart-todo.com/smart-todo/internal/services"
	"smart-todo.com/smart-todo/pkg/constants"
	model "smart-todo.com/smart-todo/pkg/models"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

// serviceError maps service-layer exceptions to HTTP errors, defaulting to
// a plain 500 for anything unclassified.
func serviceError(err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	task, err := h.taskService.CreateTask(ctx, req.Title, req.Description, req.Priority, req.DueDate)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter := services.ListFilter{
		Status:   constants.TaskStatus(c.QueryParam("status")),
		Priority: constants.Priority(c.QueryParam("priority")),
		SortBy:   c.QueryParam("sort"),
	}
	if filter.Status != "" && !constants.ValidStatus(filter.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be pending or completed")
	}
	if filter.Priority != "" && !constants.ValidPriority(filter.Priority) {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of Low, Medium, High")
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

// UpdateTask stores the request body as the full replacement record for the
// task. Derived fields are taken as given; collaborators are expected to
// send back a record previously produced by the system.
func (h *Handler) UpdateTask(c echo.Context) error {
	var task model.Task
	if err := c.Bind(&task); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if !constants.ValidPriority(task.Priority) {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of Low, Medium, High")
	}
	if !constants.ValidStatus(task.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be pending or completed")
	}

	updated, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), task)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CompleteTask(c echo.Context) error {
	task, err := h.taskService.CompleteTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) OptimizeSchedule(c echo.Context) error {
	tasks, err := h.taskService.OptimizeSchedule(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) CheckReminders(c echo.Context) error {
	notices, err := h.taskService.CheckReminders(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":     len(notices),
		"reminders": notices,
	})
}

func (h *Handler) DailySummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.taskService.DailySummary(c.Request().Context()))
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.taskService.Stats(c.Request().Context()))
}

func (h *Handler) Backup(c echo.Context) error {
	var req dto.BackupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	path, err := h.taskService.Backup(c.Request().Context(), req.Filename)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"backup_file": path})
}

func (h *Handler) Restore(c echo.Context) error {
	var req dto.RestoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Filename == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "filename is required")
	}

	if err := h.taskService.Restore(c.Request().Context(), req.Filename); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
