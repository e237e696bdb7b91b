package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.catalog.ListProjects(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(projects, func(p domain.Project, _ int) projectJSON { return mapProjectToJSON(p) }))
}

func (s *Server) createProject(c *gin.Context) {
	var req projectCreateJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("invalid body: %w", domain.ErrValidation))
		return
	}

	project, err := s.catalog.CreateProject(c.Request.Context(), domain.Project{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Images:      req.Images,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapProjectToJSON(project))
}

func (s *Server) deleteProject(c *gin.Context) {
	if err := s.catalog.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Проект удален"})
}
