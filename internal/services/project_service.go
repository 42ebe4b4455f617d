package services

import (
	"fmt"
	"time"

	"tenderlink_backend/internal/apperrors"
	"tenderlink_backend/internal/logger"
	"tenderlink_backend/internal/models"
	"tenderlink_backend/internal/repositories"
	"tenderlink_backend/internal/services/dto"
)

type ProjectService interface {
	// CreateProject persists a tender posting, notifies the creator, and
	// best-effort notifies matched bidders. Notification failures never roll
	// back or fail the creation.
	CreateProject(ownerID string, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error)

	ListProjects(query dto.ListProjectsQuery) (*dto.ListProjectsResponse, error)
}

type projectService struct {
	projectRepo         repositories.ProjectRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
	matcherService      MatcherService
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
	matcherService MatcherService,
) ProjectService {
	return &projectService{
		projectRepo:         projectRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		matcherService:      matcherService,
	}
}

func (s *projectService) CreateProject(ownerID string, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid deadline: expected YYYY-MM-DD or RFC3339")
	}

	project := &models.Project{
		Title:         req.Title,
		Description:   req.Description,
		Budget:        req.Budget,
		Deadline:      deadline,
		Category:      req.Category,
		Specification: req.Specification,
		Status:        models.ProjectStatusOpen,
		BidCount:      0,
		Progress:      0,
		OwnerID:       ownerID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	metadata := &dto.NotificationMetadata{ProjectID: project.ID}

	// Creator notification. The posting is already committed; a failure here
	// is logged, not surfaced.
	if _, err := s.notificationService.CreateNotification(
		ownerID,
		repositories.NotificationTypeProjectCreated,
		"Project created",
		fmt.Sprintf("Your project '%s' was posted and is now open for bids.", project.Title),
		metadata,
	); err != nil {
		logger.WithError(err).Warn("failed to notify project creator", "project_id", project.ID)
	}

	s.notifyInterestedBidders(project, metadata)

	return &dto.CreateProjectResponse{
		Message:   "Project created successfully",
		ProjectID: project.ID,
	}, nil
}

// notifyInterestedBidders fans out the new-tender notification to matched
// bidders. Strictly best-effort.
func (s *projectService) notifyInterestedBidders(project *models.Project, metadata *dto.NotificationMetadata) {
	bidderIDs, err := s.matcherService.GetInterestedBidders(project.Category, project.Specification)
	if err != nil {
		logger.WithError(err).Warn("failed to match interested bidders", "project_id", project.ID)
		return
	}
	if len(bidderIDs) == 0 {
		return
	}

	err = s.notificationService.CreateBulkNotifications(
		bidderIDs,
		repositories.NotificationTypeNewTenderMatch,
		"New tender in your field",
		fmt.Sprintf("A new tender '%s' in category '%s' may interest you.", project.Title, project.Category),
		metadata,
	)
	if err != nil {
		logger.WithError(err).Warn("failed to notify interested bidders",
			"project_id", project.ID,
			"bidders", len(bidderIDs),
		)
	}
}

func (s *projectService) ListProjects(query dto.ListProjectsQuery) (*dto.ListProjectsResponse, error) {
	projects, err := s.projectRepo.Find(repositories.ProjectFilter{
		Status:   models.ProjectStatus(query.Status),
		Category: query.Category,
		Limit:    query.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	response := &dto.ListProjectsResponse{
		Projects:   make([]dto.ProjectResponse, 0, len(projects)),
		Filtered:   false,
		FilterType: "all",
	}

	// Bidders can narrow the listing to tenders matching their specialty,
	// using the same keyword heuristic that drives notification fan-out.
	filterType := models.BidderType(query.BidderType)
	applyFilter := query.UserType == string(models.UserTypeBidder) && models.ValidBidderType(filterType)

	for i := range projects {
		p := &projects[i]
		if applyFilter && !s.matcherService.MatchesBidderType(p.Category, p.Specification, filterType) {
			continue
		}
		response.Projects = append(response.Projects, dto.NewProjectResponse(p))
	}

	if applyFilter {
		response.Filtered = true
		response.FilterType = string(filterType)
	}

	return response, nil
}

func parseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
