package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/atuservicios/servicio-api/background"
	"github.com/atuservicios/servicio-api/schema"
	"github.com/atuservicios/servicio-api/store"
	"github.com/atuservicios/servicio-api/utils"
)

// RequestTopic names the live feed of one request document.
func RequestTopic(requestID string) string {
	return "request/" + requestID
}

// createRequest is the API for a client to ask for a service. The new
// request is broadcast to nearby providers as a best-effort background job.
func (s *Server) createRequest(c *gin.Context) {
	account := c.MustGet("account").(*schema.Account)

	var params struct {
		ServiceType schema.ServiceType `json:"service_type" binding:"required"`
		Location    schema.Location    `json:"location" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// label the location for display when the client sent a bare coordinate
	if params.Location.Address == "" && s.geoClient != nil {
		if results, err := s.geoClient.Get(params.Location); err == nil {
			if addr := utils.ReadAddress(results); addr != nil {
				params.Location.Address = addr.Name
			}
		} else {
			log.WithError(err).Warn("reverse geocode request location")
		}
	}

	req, err := s.store.CreateRequest(account.AccountNumber, params.ServiceType, params.Location)
	if err != nil {
		if err == store.ErrInvalidServiceType {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownServiceType)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.enqueue(background.TaskBroadcastNewRequest, req.ID.String())

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// listRequests is the API for the caller's request history: own requests
// for a client, assigned requests for a provider, newest first
func (s *Server) listRequests(c *gin.Context) {
	account := c.MustGet("account").(*schema.Account)

	requests, err := s.store.ListRequests(account)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// requestDetail is the API to read one request
func (s *Server) requestDetail(c *gin.Context) {
	account := c.MustGet("account").(*schema.Account)

	req, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	// pending requests are visible to every provider so they can accept;
	// anything else only to its two parties
	if !visibleTo(req, account) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotVisible)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// updateRequestStatus drives one lifecycle transition of a request. The
// target status comes from the body; the acting party from the token. Every
// transition is conditional on the stored state, so a stale caller gets a
// not-found instead of clobbering a terminal record.
func (s *Server) updateRequestStatus(c *gin.Context) {
	account := c.MustGet("account").(*schema.Account)
	requestID := c.Param("requestID")

	var params struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	current, err := s.store.GetRequest(requestID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if !visibleTo(current, account) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotVisible)
		return
	}

	// the conditional update below is still the arbiter under concurrency;
	// this check only rejects moves that are wrong no matter the race
	if !schema.CanTransition(current.Status, params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorTransitionNotAllowed)
		return
	}

	switch params.Status {
	case schema.REQUEST_ACCEPTED:
		if !account.IsProvider() {
			abortWithEncoding(c, http.StatusBadRequest, errorNotProvider)
			return
		}
		err = s.store.AcceptRequest(requestID, account.AccountNumber)
	case schema.REQUEST_CANCELLED:
		// only the two parties may give a request up
		if current.ClientID != account.AccountNumber && current.ProviderID != account.AccountNumber {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotVisible)
			return
		}
		err = s.store.CancelRequest(requestID)
	case schema.REQUEST_COMPLETED:
		// only the assigned provider closes the engagement
		if current.ProviderID != account.AccountNumber {
			abortWithEncoding(c, http.StatusBadRequest, errorNotProvider)
			return
		}
		err = s.store.CompleteRequest(requestID)
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if params.Status == schema.REQUEST_ACCEPTED {
		s.enqueue(background.TaskNotifyRequestAccepted, requestID)
	}

	// refresh the caller's view with the committed record
	req, err := s.store.GetRequest(requestID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.hub.Publish(RequestTopic(requestID), *req)

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// enqueue hands a job to the background queue; failures are logged and
// never fail the caller
func (s *Server) enqueue(taskName string, args ...string) {
	if s.background == nil {
		return
	}

	signature := &tasks.Signature{Name: taskName}
	for _, arg := range args {
		signature.Args = append(signature.Args, tasks.Arg{Type: "string", Value: arg})
	}

	if _, err := s.background.SendTask(signature); err != nil {
		log.WithError(err).Warnf("enqueue %s", taskName)
	}
}

func visibleTo(req *schema.ServiceRequest, account *schema.Account) bool {
	if req.ClientID == account.AccountNumber || req.ProviderID == account.AccountNumber {
		return true
	}
	return account.IsProvider() && req.Status == schema.REQUEST_PENDING
}
