package store

import (
	"fmt"
	"time"

	"github.com/atuservicios/servicio-api/schema"
)

var (
	ErrRequestNotExist    = fmt.Errorf("the request does not exist or is not open for this transition")
	ErrInvalidServiceType = fmt.Errorf("unknown service type")
)

// CreateRequest creates a service request in the PENDING state. There is no
// cap on how many pending requests a client may hold at once.
func (s *ServicioStore) CreateRequest(clientID string, serviceType schema.ServiceType, location schema.Location) (*schema.ServiceRequest, error) {
	if !schema.ValidServiceType(serviceType) {
		return nil, ErrInvalidServiceType
	}

	req := schema.ServiceRequest{
		ClientID:    clientID,
		ServiceType: serviceType,
		Status:      schema.REQUEST_PENDING,
		Location:    location,
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		return nil, err
	}

	return &req, nil
}

// GetRequest returns one service request by id
func (s *ServicioStore) GetRequest(requestID string) (*schema.ServiceRequest, error) {
	var req schema.ServiceRequest
	if err := s.ormDB.Where("id = ?", requestID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRequests returns the requests visible to an account, newest first.
// A client sees the requests it created; a provider sees the requests
// assigned to it.
func (s *ServicioStore) ListRequests(account *schema.Account) ([]schema.ServiceRequest, error) {
	requests := []schema.ServiceRequest{}

	q := s.ormDB.Order("created_at desc")
	if account.IsProvider() {
		q = q.Where("provider_id = ?", account.AccountNumber)
	} else {
		q = q.Where("client_id = ?", account.AccountNumber)
	}

	if err := q.Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// AcceptRequest assigns a provider to a pending request. The update is
// conditional on the current state so that of two concurrent providers only
// the first wins; the loser receives ErrRequestNotExist. A request that has
// been cancelled in the meantime fails the same way.
func (s *ServicioStore) AcceptRequest(requestID, providerID string) error {
	result := s.ormDB.Model(schema.ServiceRequest{}).
		Where("id = ? AND client_id != ? AND status = ?", requestID, providerID, schema.REQUEST_PENDING).
		Updates(map[string]interface{}{
			"status":      schema.REQUEST_ACCEPTED,
			"provider_id": providerID,
			"accepted_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	return nil
}

// CancelRequest cancels a request that is still PENDING or ACCEPTED.
// Terminal states are left untouched, so acceptedAt and completedAt of a
// completed request can never be clobbered by a late cancel.
func (s *ServicioStore) CancelRequest(requestID string) error {
	result := s.ormDB.Model(schema.ServiceRequest{}).
		Where("id = ? AND status IN (?)", requestID, []string{schema.REQUEST_PENDING, schema.REQUEST_ACCEPTED}).
		Update("status", schema.REQUEST_CANCELLED)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	return nil
}

// CompleteRequest closes an accepted request
func (s *ServicioStore) CompleteRequest(requestID string) error {
	result := s.ormDB.Model(schema.ServiceRequest{}).
		Where("id = ? AND status = ?", requestID, schema.REQUEST_ACCEPTED).
		Updates(map[string]interface{}{
			"status":       schema.REQUEST_COMPLETED,
			"completed_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	return nil
}

// CountRequestsByStatus tallies requests per lifecycle status
func (s *ServicioStore) CountRequestsByStatus() (map[string]int64, error) {
	rows, err := s.ormDB.Model(schema.ServiceRequest{}).
		Select("status, count(*)").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
