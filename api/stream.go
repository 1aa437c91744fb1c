package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/atuservicios/servicio-api/background"
	"github.com/atuservicios/servicio-api/chat"
	"github.com/atuservicios/servicio-api/matching"
	"github.com/atuservicios/servicio-api/schema"
)

// taskBroadcaster re-announces a request through the background queue and
// tells the waiting client the search has started over.
type taskBroadcaster struct {
	server *Server
}

func (b *taskBroadcaster) BroadcastNewRequest(requestID string) error {
	b.server.enqueue(background.TaskBroadcastNewRequest, requestID)
	b.server.enqueue(background.TaskNotifySearchingAgain, requestID)
	return nil
}

// requestEvents streams the live state of one request as server-sent
// events. The owning client of a still-pending request additionally gets a
// matching watcher: the countdown runs server-side and its outcomes are
// interleaved into the stream. `?retry=1` restarts an exhausted search.
func (s *Server) requestEvents(c *gin.Context) {
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

	if !visibleTo(req, account) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotVisible)
		return
	}

	sub := s.hub.Subscribe(RequestTopic(requestID))
	defer sub.Cancel()

	var outcomes <-chan matching.Outcome
	if req.Status == schema.REQUEST_PENDING && req.ClientID == account.AccountNumber {
		watcher := matching.NewWatcher(s.store, requestID, matching.Options{
			Broadcaster: &taskBroadcaster{server: s},
		})

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()
		go watcher.Run(ctx)
		outcomes = watcher.Outcomes()

		if c.Query("retry") == "1" {
			watcher.Retry()
		}
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.SSEvent("request", req)

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case snapshot, ok := <-sub.Updates():
			if !ok {
				return false
			}
			c.SSEvent("request", snapshot)
			return true
		case outcome := <-outcomes:
			c.SSEvent("matching", string(outcome))
			return true
		}
	})
}

// messageEvents streams the message feed of one request chat. Each event
// carries the full feed; reading the stream flips the read flags of
// messages addressed to the viewer.
func (s *Server) messageEvents(c *gin.Context) {
	account := c.MustGet("account").(*schema.Account)
	requestID := c.Param("requestID")

	session := chat.NewSession(s.store, s.mongoStore, s.hub, requestID, account.AccountNumber)
	if err := session.Start(c.Request.Context()); err != nil {
		switch {
		case err == chat.ErrNotParticipant:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotVisible)
		case err == chat.ErrRequestNotAccepted:
			abortWithEncoding(c, http.StatusBadRequest, errorRequestClosed)
		case gorm.IsRecordNotFoundError(err):
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}
	defer session.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.SSEvent("messages", session.Messages())

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-session.Changed():
			c.SSEvent("messages", session.Messages())
			return true
		}
	})
}
