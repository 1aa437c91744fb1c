package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// requestMetrics reports how many requests sit in each lifecycle status
func (s *Server) requestMetrics(c *gin.Context) {
	counts, err := s.store.CountRequestsByStatus()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": counts})
}
