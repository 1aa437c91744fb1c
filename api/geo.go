package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atuservicios/servicio-api/schema"
	"github.com/atuservicios/servicio-api/utils"
)

// reverseGeocode is the API to label a coordinate pair with a human
// readable address. A single best-effort lookup; a miss returns an empty
// result rather than an error.
func (s *Server) reverseGeocode(c *gin.Context) {
	latitude, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	longitude, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if s.geoClient == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorUnknownAddress)
		return
	}

	results, err := s.geoClient.Get(schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorUnknownAddress, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": utils.ReadAddress(results)})
}
