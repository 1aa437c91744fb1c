package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/atuservicios/servicio-api/api/mocks"
	"github.com/atuservicios/servicio-api/feed"
	"github.com/atuservicios/servicio-api/schema"
)

func TestSendMessage(t *testing.T) {
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

	message := schema.Message{
		ID:         uuid.New().String(),
		RequestID:  requestID.String(),
		SenderID:   "client-1",
		ReceiverID: "provider-1",
		Text:       "the sink is still leaking",
	}

	m.EXPECT().
		CreateMessage(requestID.String(), "client-1", "provider-1", "the sink is still leaking").
		Return(&message, nil).Times(1)
	m.EXPECT().ListMessages(requestID.String()).Return([]schema.Message{message}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/:requestID/messages", s.sendMessage)

	req := httptest.NewRequest("POST", "/"+requestID.String()+"/messages",
		strings.NewReader(`{"text":"the sink is still leaking"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.Message `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, message.Text, jResp.Result.Text, "wrong text")
	assert.Equal(t, "provider-1", jResp.Result.ReceiverID, "wrong receiver")
}

func TestSendMessageBlankText(t *testing.T) {
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

	m.EXPECT().
		CreateMessage(requestID.String(), "client-1", "provider-1", "   ").
		Return(nil, schema.ErrEmptyMessageText).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/:requestID/messages", s.sendMessage)

	req := httptest.NewRequest("POST", "/"+requestID.String()+"/messages",
		strings.NewReader(`{"text":"   "}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorEmptyMessage.Code, jResp.Code, "wrong error code")
}

func TestSendMessageRequestClosed(t *testing.T) {
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
		Status:     schema.REQUEST_COMPLETED,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/:requestID/messages", s.sendMessage)

	req := httptest.NewRequest("POST", "/"+requestID.String()+"/messages",
		strings.NewReader(`{"text":"too late"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorRequestClosed.Code, jResp.Code, "wrong error code")
}

func TestListMessages(t *testing.T) {
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
		AccountNumber: "provider-1",
		Role:          schema.RoleProvider,
	}, nil).Times(1)

	requestID := uuid.New()
	a.EXPECT().GetRequest(requestID.String()).Return(&schema.ServiceRequest{
		ID:         requestID,
		ClientID:   "client-1",
		ProviderID: "provider-1",
		Status:     schema.REQUEST_ACCEPTED,
	}, nil).Times(1)

	messages := []schema.Message{
		{ID: "m1", RequestID: requestID.String(), SenderID: "client-1", ReceiverID: "provider-1", Text: "hello", Timestamp: 1},
		{ID: "m2", RequestID: requestID.String(), SenderID: "provider-1", ReceiverID: "client-1", Text: "on my way", Timestamp: 2},
	}

	m.EXPECT().ListMessages(requestID.String()).Return(messages, nil).Times(1)
	// the read flip runs off the response path
	m.EXPECT().MarkMessagesRead(requestID.String(), "provider-1").Return(int64(1), nil).AnyTimes()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/:requestID/messages", s.listMessages)

	req := httptest.NewRequest("GET", "/"+requestID.String()+"/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result []schema.Message `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Result, 2, "wrong message count")
	assert.Equal(t, "hello", jResp.Result[0].Text, "wrong order")
}

func TestListMessagesStranger(t *testing.T) {
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
		AccountNumber: "provider-9",
		Role:          schema.RoleProvider,
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
	router.GET("/:requestID/messages", s.listMessages)

	req := httptest.NewRequest("GET", "/"+requestID.String()+"/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
