package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) createBackup(c *gin.Context) {
	info, err := s.backups.Create(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Резервная копия создана",
		"timestamp":   info.Timestamp,
		"collections": info.Collections,
	})
}

func (s *Server) restoreBackup(c *gin.Context) {
	restored, err := s.backups.Restore(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Данные восстановлены из резервной копии",
		"collections": restored,
	})
}

func (s *Server) backupStatus(c *gin.Context) {
	status, err := s.backups.GetStatus(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
