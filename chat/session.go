// Package chat drives the live two-party message feed of one accepted
// service request.
package chat

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/atuservicios/servicio-api/feed"
	"github.com/atuservicios/servicio-api/schema"
)

const logPrefix = "chat"

var (
	ErrRequestNotAccepted = fmt.Errorf("the request has no assigned provider yet")
	ErrNotParticipant     = fmt.Errorf("the viewer does not belong to this request")
	ErrRequestClosed      = fmt.Errorf("the request no longer accepts messages")
)

// Directory resolves requests and counterpart accounts.
type Directory interface {
	GetRequest(requestID string) (*schema.ServiceRequest, error)
	GetAccount(accountNumber string) (*schema.Account, error)
}

// Messages is the chat slice of the message store.
type Messages interface {
	CreateMessage(requestID, senderID, receiverID, text string) (*schema.Message, error)
	ListMessages(requestID string) ([]schema.Message, error)
	MarkMessagesRead(requestID, receiverID string) (int64, error)
}

// Topic names the live message feed of a request.
func Topic(requestID string) string {
	return "request/" + requestID + "/messages"
}

// Session is one party's view of a request chat. Every feed snapshot
// replaces the in-memory message list in full; unread messages addressed to
// the viewer are flipped to read off the delivery path.
type Session struct {
	directory Directory
	messages  Messages
	hub       *feed.Hub

	requestID   string
	viewer      string
	counterpart *schema.Account

	sub *feed.Subscription

	mu       sync.Mutex
	feedList []schema.Message
	feedErr  error

	changed chan struct{}
	done    chan struct{}
}

func NewSession(directory Directory, messages Messages, hub *feed.Hub, requestID, viewer string) *Session {
	return &Session{
		directory: directory,
		messages:  messages,
		hub:       hub,
		requestID: requestID,
		viewer:    viewer,
		changed:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

// Start resolves the counterpart once, loads the current feed and begins
// consuming live snapshots. The session must be closed on teardown.
func (s *Session) Start(ctx context.Context) error {
	req, err := s.directory.GetRequest(s.requestID)
	if err != nil {
		return err
	}

	if req.ProviderID == "" {
		return ErrRequestNotAccepted
	}

	var counterpartID string
	switch s.viewer {
	case req.ClientID:
		counterpartID = req.ProviderID
	case req.ProviderID:
		counterpartID = req.ClientID
	default:
		return ErrNotParticipant
	}

	// resolved once; profile edits during the chat are not observed
	counterpart, err := s.directory.GetAccount(counterpartID)
	if err != nil {
		return err
	}
	s.counterpart = counterpart

	messages, err := s.messages.ListMessages(s.requestID)
	if err != nil {
		return err
	}
	s.applySnapshot(messages)

	s.sub = s.hub.Subscribe(Topic(s.requestID))
	go s.run(ctx)

	return nil
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-s.sub.Updates():
			if !ok {
				return
			}

			messages, ok := snapshot.([]schema.Message)
			if !ok {
				s.mu.Lock()
				s.feedErr = fmt.Errorf("unexpected snapshot type %T", snapshot)
				s.mu.Unlock()
				return
			}

			s.applySnapshot(messages)
		}
	}
}

// applySnapshot replaces the message list and kicks off the read-flag batch
// for messages addressed to the viewer. The batch is best effort and never
// blocks snapshot delivery.
func (s *Session) applySnapshot(messages []schema.Message) {
	s.mu.Lock()
	s.feedList = messages
	s.mu.Unlock()

	select {
	case s.changed <- struct{}{}:
	default:
	}

	unread := false
	for _, m := range messages {
		if m.ReceiverID == s.viewer && !m.Read {
			unread = true
			break
		}
	}
	if !unread {
		return
	}

	go func() {
		if _, err := s.messages.MarkMessagesRead(s.requestID, s.viewer); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Error("mark messages read")
		}
	}()
}

// Send creates a message from the viewer to the counterpart. Empty or
// whitespace-only text is rejected without a store write. On failure the
// composed text stays with the caller for a manual resend.
func (s *Session) Send(text string) (*schema.Message, error) {
	text, err := schema.ValidMessageText(text)
	if err != nil {
		return nil, err
	}

	req, err := s.directory.GetRequest(s.requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != schema.REQUEST_ACCEPTED {
		return nil, ErrRequestClosed
	}

	msg, err := s.messages.CreateMessage(s.requestID, s.viewer, s.counterpart.AccountNumber, text)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListMessages(s.requestID)
	if err == nil {
		s.hub.Publish(Topic(s.requestID), messages)
	} else {
		log.WithField("prefix", logPrefix).WithError(err).Error("refresh message feed")
	}

	return msg, nil
}

// Counterpart returns the other party of the chat.
func (s *Session) Counterpart() *schema.Account {
	return s.counterpart
}

// Changed signals that Messages holds a new snapshot. The signal is
// coalesced; one receive may cover several snapshots.
func (s *Session) Changed() <-chan struct{} {
	return s.changed
}

// Messages returns the latest observed snapshot.
func (s *Session) Messages() []schema.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedList
}

// Err reports a feed failure. The subscription is not re-established; the
// caller may navigate back and open a new session.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedErr
}

// Close releases the live subscription.
func (s *Session) Close() {
	if s.sub != nil {
		s.sub.Cancel()
		<-s.done
	}
}
