package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// forward path, one step at a time
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusPreparing, true},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusDelivered, true},

		// skipping ahead is not allowed
		{StatusPending, StatusDelivered, false},
		{StatusPending, StatusPreparing, false},
		{StatusConfirmed, StatusReady, false},

		// no going backwards
		{StatusConfirmed, StatusPending, false},
		{StatusReady, StatusPreparing, false},

		// cancel from every non-terminal state
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusReady, StatusCancelled, true},

		// terminal states have no exits
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},

		// self transitions are not moves
		{StatusPending, StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())

	assert.True(t, StatusPreparing.Valid())
	assert.False(t, Status("shipped").Valid())
	assert.False(t, Status("").Valid())
}
