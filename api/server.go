package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atuservicios/servicio-api/external/geoinfo"
	"github.com/atuservicios/servicio-api/feed"
	"github.com/atuservicios/servicio-api/logmodule"
	"github.com/atuservicios/servicio-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.ServicioCore
	mongoStore store.MongoStore

	// Live query hub
	hub *feed.Hub

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	geoClient geoinfo.GeoInfo

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtKey *rsa.PrivateKey,
	geoClient geoinfo.GeoInfo,
	backgroundEnqueuer *machinery.Server) *Server {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	return &Server{
		store:         store.NewServicioStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		hub:           feed.NewHub(),
		jwtPrivateKey: jwtKey,
		geoClient:     geoClient,
		background:    backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)
	apiRoute.GET("/services", s.listServices)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdate)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/:requestID", s.requestDetail)
		requestRoute.PATCH("/:requestID", s.updateRequestStatus)
		requestRoute.GET("/:requestID/events", s.requestEvents)

		requestRoute.GET("/:requestID/messages", s.listMessages)
		requestRoute.POST("/:requestID/messages", s.sendMessage)
		requestRoute.GET("/:requestID/messages/events", s.messageEvents)
	}

	apiRoute.GET("/providers", s.nearbyProviders)
	apiRoute.GET("/geo/address", s.reverseGeocode)

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/requests", s.requestMetrics)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both stores
	if shouldInterupt(s.store.Ping(), c) {
		return
	}
	if shouldInterupt(s.mongoStore.Ping(), c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Servicio 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
