package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "smart-todo.com/smart-todo/internal/data_models"
	"smart-todo.com/smart-todo/pkg/constants"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if !constants.ValidPriority(r.Priority) {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of Low, Medium, High")
	}
	if r.DueDate.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "due_date is required")
	}
	return nil
}
