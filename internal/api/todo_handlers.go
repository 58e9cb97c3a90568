package api

import (
	"net/http"

	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/services"
	"github.com/gin-gonic/gin"
)

// TaskRequest is the body of POST /tasks and PUT /tasks/:id.
// completed defaults to false when omitted.
type TaskRequest struct {
	Title     *string `json:"title" binding:"required"`
	Completed *bool   `json:"completed"`
}

func (r TaskRequest) completed() bool {
	return r.Completed != nil && *r.Completed
}

// DeleteTaskResponse is returned by DELETE /tasks/:id.
type DeleteTaskResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type taskURI struct {
	ID int64 `uri:"id"`
}

// CreateTaskHandler inserts a task and returns it with its new id.
func CreateTaskHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithValidationError(c, err)
			return
		}

		task, err := taskService.Create(c.Request.Context(), *req.Title, req.completed())
		if err != nil {
			abortWithInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

// ListTasksHandler returns every task, always as a JSON array.
func ListTasksHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := taskService.List(c.Request.Context())
		if err != nil {
			abortWithInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}

// GetTaskHandler returns one task by id.
func GetTaskHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri taskURI
		if err := c.ShouldBindUri(&uri); err != nil {
			abortWithValidationError(c, err)
			return
		}

		task, err := taskService.Get(c.Request.Context(), uri.ID)
		if err != nil {
			abortWithError(c, err, customerrors.DetailTaskNotFound)
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

// UpdateTaskHandler replaces title and completed of a task; an omitted
// completed resets it to false.
func UpdateTaskHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri taskURI
		if err := c.ShouldBindUri(&uri); err != nil {
			abortWithValidationError(c, err)
			return
		}
		var req TaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithValidationError(c, err)
			return
		}

		task, err := taskService.Update(c.Request.Context(), uri.ID, *req.Title, req.completed())
		if err != nil {
			abortWithError(c, err, customerrors.DetailTaskUpdateNotFound)
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

// DeleteTaskHandler removes a task and echoes its id.
func DeleteTaskHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri taskURI
		if err := c.ShouldBindUri(&uri); err != nil {
			abortWithValidationError(c, err)
			return
		}

		if err := taskService.Delete(c.Request.Context(), uri.ID); err != nil {
			abortWithError(c, err, customerrors.DetailTaskDeleteNotFound)
			return
		}
		c.JSON(http.StatusOK, DeleteTaskResponse{Status: "deleted", ID: uri.ID})
	}
}
