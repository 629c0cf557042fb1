package handler

import (
	"net/http"

	"ops-tracker/internal/logger"
	"ops-tracker/internal/model"
	"ops-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct{ tasks *service.TaskService }

func NewTaskHandler(tasks *service.TaskService) *TaskHandler { return &TaskHandler{tasks: tasks} }

// GET /api/tasks lists the caller's assigned/collaborating tasks.
// With ?scope=all, admins get every task.
func (h *TaskHandler) List(c *gin.Context) {
	user := currentUser(c)
	var (
		tasks []model.ProjectTask
		err   error
	)
	if c.Query("scope") == "all" && service.IsAdmin(user) {
		tasks, err = h.tasks.ListAll(c.Request.Context())
	} else {
		tasks, err = h.tasks.ListForUser(c.Request.Context(), user.ID)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	if tasks == nil {
		tasks = []model.ProjectTask{}
	}
	c.JSON(http.StatusOK, tasks)
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req model.SaveTaskRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.tasks.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info("task.created", "task", t.ID, "assignee", t.AssignedUserID)
	c.JSON(http.StatusCreated, t)
}

// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req model.SaveTaskRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.tasks.Update(c.Request.Context(), currentUser(c), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/folders
func (h *TaskHandler) ListFolders(c *gin.Context) {
	folders, err := h.tasks.ListFolders(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, folders)
}

// POST /api/folders
func (h *TaskHandler) CreateFolder(c *gin.Context) {
	var req model.CreateFolderRequest
	if !bind(c, &req) {
		return
	}
	f, err := h.tasks.CreateFolder(c.Request.Context(), currentUser(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info("folder.created", "folder", f.ID, "visibility", f.Visibility)
	c.JSON(http.StatusCreated, f)
}

// DELETE /api/folders/:id
func (h *TaskHandler) DeleteFolder(c *gin.Context) {
	if err := h.tasks.DeleteFolder(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
