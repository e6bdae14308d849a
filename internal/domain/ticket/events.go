package ticket

import (
	"time"
)

// TicketOpenedEvent is emitted after a ticket and its opening comment have
// been committed. It drives the admin notification fan-out.
type TicketOpenedEvent struct {
	TicketID  uint
	OwnerID   uint
	Title     string
	Timestamp time.Time
}

func NewTicketOpenedEvent(ticketID, ownerID uint, title string, timestamp time.Time) TicketOpenedEvent {
	return TicketOpenedEvent{
		TicketID:  ticketID,
		OwnerID:   ownerID,
		Title:     title,
		Timestamp: timestamp,
	}
}

// TicketRepliedEvent is emitted after an owner reply has been committed.
type TicketRepliedEvent struct {
	TicketID   uint
	OwnerID    uint
	Title      string
	SequenceID uint
	Timestamp  time.Time
}

func NewTicketRepliedEvent(ticketID, ownerID uint, title string, sequenceID uint, timestamp time.Time) TicketRepliedEvent {
	return TicketRepliedEvent{
		TicketID:   ticketID,
		OwnerID:    ownerID,
		Title:      title,
		SequenceID: sequenceID,
		Timestamp:  timestamp,
	}
}
