package handlers

import (
	"errors"
	"net/http"
	"time"

	"todo-list/internal/middleware"
	"todo-list/internal/models"
	"todo-list/internal/monitoring"
	"todo-list/internal/services"
	"todo-list/internal/sessions"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type TaskHandler struct {
	tasks services.TaskService
	auth  services.AuthService
	codec *sessions.CookieCodec
}

func NewTaskHandler(tasks services.TaskService, auth services.AuthService, codec *sessions.CookieCodec) *TaskHandler {
	return &TaskHandler{tasks: tasks, auth: auth, codec: codec}
}

type TaskInput struct {
	Description string    `json:"description" binding:"required"`
	DueAt       time.Time `json:"due_at" binding:"required"`
	Category    string    `json:"category" binding:"required"`
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var input TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request data",
			"details": err.Error(),
		})
		return
	}

	task, err := h.tasks.AddTask(c.Request.Context(), user.ID, input.Description, input.DueAt, models.Category(input.Category))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	monitoring.TasksCreatedTotal.WithLabelValues(task.Category.String()).Inc()

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) ToggleStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	taskID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	task, err := h.tasks.ToggleStatus(c.Request.Context(), user.ID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	monitoring.TasksToggledTotal.Inc()

	c.JSON(http.StatusOK, task)
}

// ListTasks returns the owner's tasks, optionally narrowed by a filter given
// as ?filter=category|status|period&value=... . An invalid filter value ends
// the session and sends the caller back to the anonymous home view.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	tasks, err := h.tasks.TasksForOwner(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if kind := c.Query("filter"); kind != "" {
		spec, err := parseFilterSpec(kind, c.Query("value"))
		if err == nil {
			tasks, err = services.FilterTasks(tasks, spec, time.Now())
		}
		if err != nil {
			if errors.Is(err, services.ErrInvalidOption) {
				h.endSession(c)
				return
			}
			handleServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

func parseFilterSpec(kind, value string) (services.FilterSpec, error) {
	switch kind {
	case "category":
		return services.FilterSpec{Kind: services.FilterByCategory, Category: models.Category(value)}, nil
	case "status":
		return services.FilterSpec{Kind: services.FilterByStatus, Status: services.StatusOption(value)}, nil
	case "period":
		return services.FilterSpec{Kind: services.FilterByPeriod, Period: services.Period(value)}, nil
	}
	return services.FilterSpec{}, services.ErrInvalidOption
}

// endSession terminates the authenticated session and soft-redirects to the
// home view.
func (h *TaskHandler) endSession(c *gin.Context) {
	if token, ok := middleware.SessionToken(c); ok {
		_ = h.auth.Logout(c.Request.Context(), token)
	}
	clearSessionCookie(c, h.codec)
	c.Redirect(http.StatusSeeOther, "/")
	c.Abort()
}
