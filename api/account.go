package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atuservicios/servicio-api/schema"
	"github.com/atuservicios/servicio-api/store"
)

// accountDetail is the API to query the caller's account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdate is the API to apply a partial update to the caller's
// account: profile edits and the provider availability toggle
func (s *Server) accountUpdate(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Name        *string             `json:"name"`
		Phone       *string             `json:"phone"`
		ServiceType *schema.ServiceType `json:"service_type"`
		IsAvailable *bool               `json:"is_available"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.ServiceType != nil && !schema.ValidServiceType(*params.ServiceType) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownServiceType)
		return
	}

	if params.ServiceType != nil || params.IsAvailable != nil {
		account := c.MustGet("account").(*schema.Account)
		if !account.IsProvider() {
			abortWithEncoding(c, http.StatusBadRequest, errorNotProvider)
			return
		}
	}

	if err := s.store.UpdateAccount(accountNumber, store.AccountUpdates{
		Name:        params.Name,
		Phone:       params.Phone,
		ServiceType: params.ServiceType,
		IsAvailable: params.IsAvailable,
	}); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// listServices serves the catalog of requestable service types
func (s *Server) listServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services": schema.Services,
	})
}
