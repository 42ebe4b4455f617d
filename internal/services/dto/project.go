package dto

import (
	"time"

	"tenderlink_backend/internal/models"
)

type CreateProjectRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Budget        float64 `json:"budget" binding:"required,gt=0"`
	Deadline      string  `json:"deadline" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Specification string  `json:"specification"`
}

type CreateProjectResponse struct {
	Message   string `json:"message"`
	ProjectID string `json:"projectId"`
}

// ListProjectsQuery - query parameters for GET /api/projects.
type ListProjectsQuery struct {
	Status     string `form:"status"`
	Category   string `form:"category"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	UserType   string `form:"userType"`
	BidderType string `form:"bidderType"`
}

type ProjectResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Budget        float64              `json:"budget"`
	Deadline      time.Time            `json:"deadline"`
	Category      string               `json:"category"`
	Specification string               `json:"specification,omitempty"`
	Status        models.ProjectStatus `json:"status"`
	BidCount      int                  `json:"bidCount"`
	Progress      int                  `json:"progress"`
	OwnerID       string               `json:"ownerId"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ListProjectsResponse mirrors the public listing contract: Filtered reports
// whether a bidder-specialty filter was applied, FilterType names it.
type ListProjectsResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Filtered   bool              `json:"filtered"`
	FilterType string            `json:"filterType"`
}

func NewProjectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Budget:        p.Budget,
		Deadline:      p.Deadline,
		Category:      p.Category,
		Specification: p.Specification,
		Status:        p.Status,
		BidCount:      p.BidCount,
		Progress:      p.Progress,
		OwnerID:       p.OwnerID,
		CreatedAt:     p.CreatedAt,
	}
}
