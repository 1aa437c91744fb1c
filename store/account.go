package store

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/atuservicios/servicio-api/schema"
)

var (
	ErrAccountTaken = fmt.Errorf("the account has been registered or has been taken")
)

// AccountUpdates carries the mutable fields of an account for a partial
// update. Nil pointers leave the stored value untouched.
type AccountUpdates struct {
	Name        *string
	Phone       *string
	ServiceType *schema.ServiceType
	IsAvailable *bool
}

// CreateAccount registers an account into the servicio system
func (s *ServicioStore) CreateAccount(accountNumber, email, passwordHash, name string, role schema.AccountRole) (*schema.Account, error) {
	a := schema.Account{
		AccountNumber: accountNumber,
		Email:         email,
		PasswordHash:  passwordHash,
		Name:          name,
		Role:          role,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *ServicioStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountByEmail returns an account instance of a given email
func (s *ServicioStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccount applies a partial update to an account. Provider fields are
// mirrored into the mongo profile so the account stays discoverable.
func (s *ServicioStore) UpdateAccount(accountNumber string, updates AccountUpdates) error {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	if updates.Name != nil {
		a.Name = *updates.Name
	}
	if updates.Phone != nil {
		a.Phone = *updates.Phone
	}
	if updates.ServiceType != nil {
		a.Provider.ServiceType = *updates.ServiceType
	}
	if updates.IsAvailable != nil {
		a.Provider.IsAvailable = *updates.IsAvailable
	}

	if err := s.ormDB.Save(&a).Error; err != nil {
		return err
	}

	if a.IsProvider() {
		return s.mongo.UpsertProfile(schema.Profile{
			AccountNumber: a.AccountNumber,
			ServiceType:   a.Provider.ServiceType,
			IsAvailable:   a.Provider.IsAvailable,
			Location:      profileLocation(a.Location),
		})
	}

	return nil
}

// UpdateAccountGeoPosition refreshes the last reported location of an account
func (s *ServicioStore) UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	a.Location = &schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	}

	if err := s.ormDB.Save(&a).Error; err != nil {
		return err
	}

	if a.IsProvider() {
		return s.mongo.UpdateProfileLocation(accountNumber, latitude, longitude)
	}

	return nil
}

func profileLocation(loc *schema.Location) *schema.GeoJSON {
	if loc == nil {
		return nil
	}
	return &schema.GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}
