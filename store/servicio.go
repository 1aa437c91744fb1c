package store

import (
	"github.com/jinzhu/gorm"

	"github.com/atuservicios/servicio-api/schema"
)

// servicio main datastore
type ServicioCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber, email, passwordHash, name string, role schema.AccountRole) (*schema.Account, error)
	GetAccount(string) (*schema.Account, error)
	GetAccountByEmail(string) (*schema.Account, error)
	UpdateAccount(accountNumber string, updates AccountUpdates) error
	UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error

	// Service request lifecycle
	CreateRequest(clientID string, serviceType schema.ServiceType, location schema.Location) (*schema.ServiceRequest, error)
	GetRequest(requestID string) (*schema.ServiceRequest, error)
	ListRequests(account *schema.Account) ([]schema.ServiceRequest, error)
	AcceptRequest(requestID, providerID string) error
	CancelRequest(requestID string) error
	CompleteRequest(requestID string) error
	CountRequestsByStatus() (map[string]int64, error)
}

// ServicioStore is an implementation of ServicioCore
type ServicioStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewServicioStore(ormDB *gorm.DB, mongo MongoStore) *ServicioStore {
	return &ServicioStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *ServicioStore) Ping() error {
	return s.ormDB.DB().Ping()
}
