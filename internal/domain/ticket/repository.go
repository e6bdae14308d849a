package ticket

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a ticket does not exist. The application
// layer also uses it for tickets the caller does not own, so a non-owner
// cannot distinguish "absent" from "forbidden".
var ErrNotFound = errors.New("ticket not found")

// Repository persists tickets and their comment logs.
//
// AppendComment and Update must be called inside a transaction that holds
// the row lock taken by FindByIDForUpdate, so that sequence assignment and
// the status change are atomic with respect to concurrent replies on the
// same ticket.
type Repository interface {
	// Save inserts a new ticket together with its opening comment.
	Save(ctx context.Context, t *Ticket) error

	// Update persists the ticket's mutable fields (status, updated_at).
	Update(ctx context.Context, t *Ticket) error

	// AppendComment inserts a single comment row for the ticket.
	AppendComment(ctx context.Context, ticketID uint, c *Comment) error

	// FindByID loads a ticket with its full comment log, ordered by
	// sequence ID. Returns ErrNotFound if absent.
	FindByID(ctx context.Context, id uint) (*Ticket, error)

	// FindByIDForUpdate is FindByID with a row-level lock on the ticket.
	// Only valid inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uint) (*Ticket, error)

	// FindByOwner lists a user's tickets newest-first, without comments.
	FindByOwner(ctx context.Context, ownerID uint) ([]*Ticket, error)
}
