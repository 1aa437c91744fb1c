package schema

import (
	"fmt"
	"strings"
)

const (
	MessageCollection = "message"
)

var (
	ErrEmptyMessageText   = fmt.Errorf("message text is empty")
	ErrMessageTextTooLong = fmt.Errorf("message text exceeds %d characters", MessageMaxLength)
)

// MessageMaxLength bounds the text of a single chat message.
const MessageMaxLength = 500

// Message is one chat entry between the two parties of a service request.
// Messages are never edited or deleted; the read flag flips from false to
// true once when the receiver observes the message in an open chat.
type Message struct {
	ID         string `json:"id" bson:"id"`
	RequestID  string `json:"request_id" bson:"request_id"`
	SenderID   string `json:"sender_id" bson:"sender_id"`
	ReceiverID string `json:"receiver_id" bson:"receiver_id"`
	Text       string `json:"text" bson:"text"`
	Read       bool   `json:"read" bson:"read"`
	Timestamp  int64  `json:"created_at" bson:"ts"`
}

// ValidMessageText trims a composed text and rejects anything a chat is not
// allowed to carry. The returned text is the one to persist.
func ValidMessageText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessageText
	}
	if len(text) > MessageMaxLength {
		return "", ErrMessageTextTooLong
	}
	return text, nil
}
