package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/atuservicios/servicio-api/api/mocks"
	"github.com/atuservicios/servicio-api/chat"
	"github.com/atuservicios/servicio-api/feed"
	"github.com/atuservicios/servicio-api/schema"
)

// sseRecorder adds the close notification channel the stream renderer
// expects from a live connection.
type sseRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newSSERecorder() *sseRecorder {
	return &sseRecorder{
		ResponseRecorder: httptest.NewRecorder(),
		closed:           make(chan bool, 1),
	}
}

func (r *sseRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestRequestEventsStreamsLiveState(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockServicioCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
		hub:        feed.NewHub(),
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		AccountNumber: "client-1",
		Role:          schema.RoleClient,
	}, nil).Times(1)

	requestID := uuid.New()
	pending := schema.ServiceRequest{
		ID:          requestID,
		ClientID:    "client-1",
		ServiceType: schema.ServicePlumber,
		Status:      schema.REQUEST_PENDING,
	}
	accepted := pending
	accepted.ProviderID = "provider-1"
	accepted.Status = schema.REQUEST_ACCEPTED

	// the owning client of a pending request also starts a server-side
	// watcher, which polls on its own schedule
	a.EXPECT().GetRequest(requestID.String()).Return(&pending, nil).AnyTimes()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/:requestID/events", s.requestEvents)

	go func() {
		time.Sleep(30 * time.Millisecond)
		s.hub.Publish(RequestTopic(requestID.String()), accepted)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest("GET", "/"+requestID.String()+"/events", nil).WithContext(ctx)
	w := newSSERecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	body := w.Body.String()
	assert.Contains(t, body, "event:request", "missing request event")
	assert.Contains(t, body, `"PENDING"`, "missing initial snapshot")
	assert.Contains(t, body, `"ACCEPTED"`, "missing published snapshot")
}

func TestRequestEventsHiddenFromStranger(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockServicioCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
		hub:        feed.NewHub(),
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		AccountNumber: "client-2",
		Role:          schema.RoleClient,
	}, nil).Times(1)

	requestID := uuid.New()
	a.EXPECT().GetRequest(requestID.String()).Return(&schema.ServiceRequest{
		ID:         requestID,
		ClientID:   "client-1",
		ProviderID: "provider-1",
		Status:     schema.REQUEST_ACCEPTED,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/:requestID/events", s.requestEvents)

	req := httptest.NewRequest("GET", "/"+requestID.String()+"/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestMessageEventsStreamsSnapshots(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockServicioCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
		hub:        feed.NewHub(),
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		AccountNumber: "client-1",
		Role:          schema.RoleClient,
	}, nil).Times(1)

	requestID := uuid.New()
	a.EXPECT().GetRequest(requestID.String()).Return(&schema.ServiceRequest{
		ID:         requestID,
		ClientID:   "client-1",
		ProviderID: "provider-1",
		Status:     schema.REQUEST_ACCEPTED,
	}, nil).Times(1)
	a.EXPECT().GetAccount("provider-1").Return(&schema.Account{
		AccountNumber: "provider-1",
		Role:          schema.RoleProvider,
		Name:          "Pedro",
	}, nil).Times(1)

	initial := []schema.Message{
		{ID: "m1", RequestID: requestID.String(), SenderID: "client-1", ReceiverID: "provider-1", Text: "hello", Read: true},
	}
	m.EXPECT().ListMessages(requestID.String()).Return(initial, nil).Times(1)
	m.EXPECT().MarkMessagesRead(requestID.String(), "client-1").Return(int64(1), nil).AnyTimes()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/:requestID/messages/events", s.messageEvents)

	go func() {
		time.Sleep(30 * time.Millisecond)
		s.hub.Publish(chat.Topic(requestID.String()), append(initial, schema.Message{
			ID: "m2", RequestID: requestID.String(), SenderID: "provider-1", ReceiverID: "client-1", Text: "on my way",
		}))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest("GET", "/"+requestID.String()+"/messages/events", nil).WithContext(ctx)
	w := newSSERecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	body := w.Body.String()
	assert.Contains(t, body, "event:messages", "missing messages event")
	assert.Contains(t, body, "hello", "missing initial feed")
	assert.Contains(t, body, "on my way", "missing published feed")
}

func TestMessageEventsHiddenFromStranger(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockServicioCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
		hub:        feed.NewHub(),
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		AccountNumber: "client-2",
		Role:          schema.RoleClient,
	}, nil).Times(1)

	requestID := uuid.New()
	a.EXPECT().GetRequest(requestID.String()).Return(&schema.ServiceRequest{
		ID:         requestID,
		ClientID:   "client-1",
		ProviderID: "provider-1",
		Status:     schema.REQUEST_ACCEPTED,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/:requestID/messages/events", s.messageEvents)

	req := httptest.NewRequest("GET", "/"+requestID.String()+"/messages/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
