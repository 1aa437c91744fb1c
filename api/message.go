package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/atuservicios/servicio-api/chat"
	"github.com/atuservicios/servicio-api/schema"
)

// listMessages is the API for the full chat history of a request, ordered
// by creation time ascending. Unread messages addressed to the caller are
// flipped to read off the response path.
func (s *Server) listMessages(c *gin.Context) {
	account := c.MustGet("account").(*schema.Account)
	requestID := c.Param("requestID")

	req, err := s.store.GetRequest(requestID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if req.ClientID != account.AccountNumber && req.ProviderID != account.AccountNumber {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotVisible)
		return
	}

	messages, err := s.mongoStore.ListMessages(requestID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	viewer := account.AccountNumber
	go func() {
		if _, err := s.mongoStore.MarkMessagesRead(requestID, viewer); err != nil {
			log.WithError(err).Error("mark messages read")
		}
	}()

	c.JSON(http.StatusOK, gin.H{"result": messages})
}

// sendMessage is the API to append a chat message to an accepted request.
// The receiver is always the other party of the request.
func (s *Server) sendMessage(c *gin.Context) {
	account := c.MustGet("account").(*schema.Account)
	requestID := c.Param("requestID")

	var params struct {
		Text string `json:"text"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	req, err := s.store.GetRequest(requestID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if req.Status != schema.REQUEST_ACCEPTED {
		abortWithEncoding(c, http.StatusBadRequest, errorRequestClosed)
		return
	}

	var receiverID string
	switch account.AccountNumber {
	case req.ClientID:
		receiverID = req.ProviderID
	case req.ProviderID:
		receiverID = req.ClientID
	default:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotVisible)
		return
	}

	msg, err := s.mongoStore.CreateMessage(requestID, account.AccountNumber, receiverID, params.Text)
	if err != nil {
		switch err {
		case schema.ErrEmptyMessageText:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyMessage)
		case schema.ErrMessageTextTooLong:
			abortWithEncoding(c, http.StatusBadRequest, errorMessageTooLong)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if messages, err := s.mongoStore.ListMessages(requestID); err == nil {
		s.hub.Publish(chat.Topic(requestID), messages)
	} else {
		log.WithError(err).Error("refresh message feed")
	}

	c.JSON(http.StatusOK, gin.H{"result": msg})
}
