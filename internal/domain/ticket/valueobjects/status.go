package valueobjects

import "fmt"

type TicketStatus string

const (
	// StatusOpenWaitAdmin means the last message came from the ticket owner
	// and a staff reply is pending.
	StatusOpenWaitAdmin TicketStatus = "open_wait_admin"
	// StatusOpenWaitUser means staff replied last and the owner's reply is
	// pending. Written by the admin side, accepted here for completeness.
	StatusOpenWaitUser TicketStatus = "open_wait_user"
	StatusClosed       TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpenWaitAdmin: true,
	StatusOpenWaitUser:  true,
	StatusClosed:        true,
}

// Closing and reopening are administrative operations; the user-facing core
// only ever moves an open ticket back to open_wait_admin.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpenWaitAdmin: {
		StatusOpenWaitUser,
		StatusClosed,
	},
	StatusOpenWaitUser: {
		StatusOpenWaitAdmin,
		StatusClosed,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowed, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsOpenWaitAdmin() bool {
	return ts == StatusOpenWaitAdmin
}

func (ts TicketStatus) IsOpenWaitUser() bool {
	return ts == StatusOpenWaitUser
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
