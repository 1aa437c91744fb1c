package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type AccountRole string

const (
	RoleClient   AccountRole = "client"
	RoleProvider AccountRole = "provider"
)

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Address   string  `json:"address,omitempty" bson:"address,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

// ProviderAttributes are the fields that are only meaningful for accounts
// with the provider role. Client accounts carry the zero value.
type ProviderAttributes struct {
	ServiceType ServiceType `json:"service_type,omitempty"`
	IsAvailable bool        `json:"is_available"`
}

func (p ProviderAttributes) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ProviderAttributes) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, p)
}

type Account struct {
	AccountNumber string             `json:"id" gorm:"primary_key"`
	Email         string             `json:"email" gorm:"unique_index"`
	PasswordHash  string             `json:"-"`
	Phone         string             `json:"phone,omitempty"`
	Name          string             `json:"name"`
	Role          AccountRole        `json:"role"`
	Provider      ProviderAttributes `json:"provider" gorm:"type:jsonb;not null;default '{}'"`
	Location      *Location          `json:"location,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// IsProvider reports whether an account offers a service.
func (a Account) IsProvider() bool {
	return a.Role == RoleProvider
}
