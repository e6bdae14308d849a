package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"open_wait_admin", false},
		{"open_wait_user", false},
		{"closed", false},
		{"resolved", true},
		{"", true},
		{"OPEN_WAIT_ADMIN", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTicketStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{"wait_admin to wait_user", StatusOpenWaitAdmin, StatusOpenWaitUser, true},
		{"wait_admin to closed", StatusOpenWaitAdmin, StatusClosed, true},
		{"wait_user to wait_admin", StatusOpenWaitUser, StatusOpenWaitAdmin, true},
		{"wait_user to closed", StatusOpenWaitUser, StatusClosed, true},
		{"closed to wait_admin", StatusClosed, StatusOpenWaitAdmin, false},
		{"closed to wait_user", StatusClosed, StatusOpenWaitUser, false},
		{"wait_admin to itself", StatusOpenWaitAdmin, StatusOpenWaitAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketStatus_Predicates(t *testing.T) {
	assert.True(t, StatusOpenWaitAdmin.IsOpenWaitAdmin())
	assert.True(t, StatusOpenWaitUser.IsOpenWaitUser())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusOpenWaitAdmin.IsClosed())
}
