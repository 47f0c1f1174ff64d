package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetworks/conductor/pkg/models"
)

// listProjectsHandler handles GET /api/v1/projects.
func (s *Server) listProjectsHandler(c *gin.Context) {
	var q listProjectsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	projects, err := s.projects.List(c.Request.Context(), q.IncludeArchived)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{
		Projects: projects,
		Total:    len(projects),
	})
}

// createProjectHandler handles POST /api/v1/projects.
func (s *Server) createProjectHandler(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := s.projects.Create(c.Request.Context(), req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// getProjectHandler handles GET /api/v1/projects/:id.
func (s *Server) getProjectHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := s.projects.Get(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// updateProjectHandler handles PATCH /api/v1/projects/:id. Absent fields keep
// their current values.
func (s *Server) updateProjectHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := s.projects.Update(c.Request.Context(), id, req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// listProjectTicketsHandler handles GET /api/v1/projects/:id/tickets.
func (s *Server) listProjectTicketsHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var q listTicketsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	// 404 for unknown projects instead of an empty list.
	if _, err := s.projects.Get(c.Request.Context(), id); err != nil {
		s.respondServiceError(c, err)
		return
	}

	tickets, total, err := s.tickets.List(c.Request.Context(), models.TicketFilters{
		ProjectID: &id,
		Statuses:  q.Status,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TicketListResponse{
		Tickets: tickets,
		Total:   total,
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
}
