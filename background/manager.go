package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atuservicios/servicio-api/external/onesignal"
	"github.com/atuservicios/servicio-api/store"
)

// task names shared between the api enqueuer and the worker
const (
	TaskBroadcastNewRequest   = "broadcast_new_request"
	TaskNotifyRequestAccepted = "notify_request_accepted"
	TaskNotifySearchingAgain  = "notify_searching_again"
)

// BackgroundManager is a struct for the servicio background worker
type BackgroundManager struct {
	store store.ServicioCore
	mongo store.MongoStore

	notifier NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      store.NewServicioStore(ormDB, mongoStore),
		mongo:      mongoStore,
		notifier:   NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterAllTasks wires every background job of the servicio system
func (m *BackgroundManager) RegisterAllTasks() error {
	if err := m.RegisterTask(TaskBroadcastNewRequest, m.BroadcastNewRequest); err != nil {
		return err
	}
	if err := m.RegisterTask(TaskNotifyRequestAccepted, m.NotifyRequestAccepted); err != nil {
		return err
	}
	return m.RegisterTask(TaskNotifySearchingAgain, m.NotifySearchingAgain)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("servicio-worker", 5)
	return m.worker.Launch()
}
