package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atuservicios/servicio-api/schema"
)

const defaultProviderDistance = 10000 // meters

// nearbyProviders is the API for provider discovery: available providers of
// a service type around the caller's location, nearest first
func (s *Server) nearbyProviders(c *gin.Context) {
	account := c.MustGet("account").(*schema.Account)

	serviceType := schema.ServiceType(c.Query("service_type"))
	if !schema.ValidServiceType(serviceType) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownServiceType)
		return
	}

	distance := defaultProviderDistance
	if d, err := strconv.Atoi(c.Query("distance")); err == nil && d > 0 {
		distance = d
	}

	if account.Location == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	profiles, err := s.mongoStore.NearbyProviders(serviceType, distance, *account.Location)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profiles})
}
