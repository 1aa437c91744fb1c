package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptOnlyFromPending(t *testing.T) {
	assert.True(t, CanTransition(REQUEST_PENDING, REQUEST_ACCEPTED))
	assert.False(t, CanTransition(REQUEST_ACCEPTED, REQUEST_ACCEPTED))
	assert.False(t, CanTransition(REQUEST_COMPLETED, REQUEST_ACCEPTED))
	assert.False(t, CanTransition(REQUEST_CANCELLED, REQUEST_ACCEPTED))
}

func TestCompleteOnlyFromAccepted(t *testing.T) {
	assert.True(t, CanTransition(REQUEST_ACCEPTED, REQUEST_COMPLETED))
	assert.False(t, CanTransition(REQUEST_PENDING, REQUEST_COMPLETED))
	assert.False(t, CanTransition(REQUEST_CANCELLED, REQUEST_COMPLETED))
	assert.False(t, CanTransition(REQUEST_COMPLETED, REQUEST_COMPLETED))
}

func TestCancelFromPendingOrAccepted(t *testing.T) {
	assert.True(t, CanTransition(REQUEST_PENDING, REQUEST_CANCELLED))
	assert.True(t, CanTransition(REQUEST_ACCEPTED, REQUEST_CANCELLED))
	assert.False(t, CanTransition(REQUEST_COMPLETED, REQUEST_CANCELLED))
	assert.False(t, CanTransition(REQUEST_CANCELLED, REQUEST_CANCELLED))
}

func TestTerminalStatus(t *testing.T) {
	assert.False(t, TerminalStatus(REQUEST_PENDING))
	assert.False(t, TerminalStatus(REQUEST_ACCEPTED))
	assert.True(t, TerminalStatus(REQUEST_COMPLETED))
	assert.True(t, TerminalStatus(REQUEST_CANCELLED))
}
