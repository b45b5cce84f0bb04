package handlers

import (
	"net/http"
	"strconv"

	"github.com/sulta24/backend-hw1/app"
	"github.com/sulta24/backend-hw1/middleware"
	"github.com/sulta24/backend-hw1/models"
	"github.com/sulta24/backend-hw1/services"
	"github.com/sulta24/backend-hw1/utils"
)

// CreateTaskRequest is the request body for POST /create_task/
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	Completed   bool    `json:"completed"`
}

// UpdateTaskRequest is the request body for PUT /tasks/{id}.
// Absent fields leave the stored value untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	Completed   *bool   `json:"completed"`
}

// principal pulls the authenticated user out of the request context.
// Routes behind RequireAuth always have one; a nil principal means a
// wiring bug, answered as 401 rather than a panic.
func principal(w http.ResponseWriter, r *http.Request) *models.User {
	user := middleware.GetPrincipalFromContext(r.Context())
	if user == nil {
		_ = utils.WriteUnauthorized(w, "")
	}
	return user
}

// CreateTaskHandler creates a task owned by the authenticated user
func CreateTaskHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := principal(w, r)
		if user == nil {
			return
		}

		var req CreateTaskRequest
		if err := decodeJSON(r, &req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		if err := utils.ValidateStruct(req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		task, err := deps.TaskService.Create(r.Context(), user.ID, req.Title, req.Description, req.Completed)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		respondJSON(w, http.StatusCreated, task)
	}
}

// ListTasksHandler lists the authenticated user's tasks with pagination
func ListTasksHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := principal(w, r)
		if user == nil {
			return
		}

		skip, err := queryInt(r, "skip", 0)
		if err != nil {
			_ = utils.WriteBadRequest(w, "invalid skip parameter", nil)
			return
		}
		limit, err := queryInt(r, "limit", services.DefaultListLimit)
		if err != nil {
			_ = utils.WriteBadRequest(w, "invalid limit parameter", nil)
			return
		}

		tasks, err := deps.TaskService.List(r.Context(), user.ID, skip, limit)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		respondJSON(w, http.StatusOK, tasks)
	}
}

// GetTaskHandler fetches a single task owned by the authenticated user
func GetTaskHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := principal(w, r)
		if user == nil {
			return
		}

		id, err := pathID(r)
		if err != nil {
			_ = utils.WriteBadRequest(w, err.Error(), nil)
			return
		}

		task, err := deps.TaskService.Get(r.Context(), user.ID, id)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		respondJSON(w, http.StatusOK, task)
	}
}

// UpdateTaskHandler applies a partial update to a task
func UpdateTaskHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := principal(w, r)
		if user == nil {
			return
		}

		id, err := pathID(r)
		if err != nil {
			_ = utils.WriteBadRequest(w, err.Error(), nil)
			return
		}

		var req UpdateTaskRequest
		if err := decodeJSON(r, &req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		if err := utils.ValidateStruct(req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		task, err := deps.TaskService.Update(r.Context(), user.ID, id, services.UpdateTaskInput{
			Title:       req.Title,
			Description: req.Description,
			Completed:   req.Completed,
		})
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		respondJSON(w, http.StatusOK, task)
	}
}

// DeleteTaskHandler removes a task owned by the authenticated user
func DeleteTaskHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := principal(w, r)
		if user == nil {
			return
		}

		id, err := pathID(r)
		if err != nil {
			_ = utils.WriteBadRequest(w, err.Error(), nil)
			return
		}

		if err := deps.TaskService.Delete(r.Context(), user.ID, id); err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		utils.WriteNoContent(w)
	}
}

// queryInt parses a non-negative integer query parameter with a default
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, strconv.ErrSyntax
	}
	return val, nil
}
