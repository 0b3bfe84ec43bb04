package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/project-tracker-api/internal/errors"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"github.com/yukikurage/project-tracker-api/internal/services"
	"github.com/yukikurage/project-tracker-api/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns one page of projects
// Optional query filters: status, role, userId
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	userID, ok := utils.QueryUint64(c, "userId")
	if !ok {
		apierrors.BadRequest(c, "Invalid userId")
		return
	}

	filter := &repository.Filter{
		PageIndex: params.PageIndex,
		PageSize:  params.PageSize,
		Status:    c.Query("status"),
		Role:      c.Query("role"),
		UserID:    userID,
	}

	projects, err := h.projectService.ListProjects(filter)
	if err != nil {
		apierrors.BadRequest(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(filter, dto.ToProjectDTOs(projects)))
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		ID          uint64 `json:"id"`
		Name        string `json:"name" binding:"required"`
		Description string `json:"description" binding:"required"`
		Status      string `json:"status"`
		CreatedBy   uint64 `json:"created_by"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject overwrites the mutable fields of a project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	type UpdateProjectRequest struct {
		ID          uint64 `json:"id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Description string `json:"description" binding:"required"`
		Status      string `json:"status"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.projectService.UpdateProject(services.UpdateProjectInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

// DeleteProject soft deletes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// UpdateUserProjectRole changes the role a user holds on a project
func (h *ProjectHandler) UpdateUserProjectRole(c *gin.Context) {
	type UpdateRoleRequest struct {
		UserID    uint64             `json:"user_id" binding:"required"`
		ProjectID uint64             `json:"project_id" binding:"required"`
		Role      models.ProjectRole `json:"role" binding:"required"`
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.UpdateUserProjectRole(req.UserID, req.ProjectID, req.Role); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User project role updated successfully"})
}

// AddProjectMember grants a user a role on a project
func (h *ProjectHandler) AddProjectMember(c *gin.Context) {
	type AddMemberRequest struct {
		UserID    uint64             `json:"user_id" binding:"required"`
		ProjectID uint64             `json:"project_id" binding:"required"`
		Role      models.ProjectRole `json:"role"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	membership, err := h.projectService.AddProjectMember(req.UserID, req.ProjectID, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMembershipDTO(*membership))
}
