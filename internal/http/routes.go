package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "smart-todo.com/smart-todo/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.POST("/tasks/:id/complete", h.CompleteTask)

	e.POST("/schedule/optimize", h.OptimizeSchedule)
	e.GET("/reminders", h.CheckReminders)
	e.GET("/summary/daily", h.DailySummary)
	e.GET("/stats", h.Stats)

	e.POST("/backup", h.Backup)
	e.POST("/restore", h.Restore)
}
