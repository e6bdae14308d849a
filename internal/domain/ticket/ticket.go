package ticket

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "aster/internal/domain/ticket/valueobjects"
	"aster/internal/shared/biztime"
)

// ErrTicketClosed is returned when an operation requires an open ticket.
var ErrTicketClosed = errors.New("ticket is closed")

// Ticket is a user-initiated support conversation. The comment log is
// append-only: creation writes comment #0 and every reply appends exactly
// one comment with the next sequence ID.
type Ticket struct {
	id        uint
	ownerID   uint
	title     string
	category  string
	status    vo.TicketStatus
	comments  []*Comment
	createdAt time.Time
	updatedAt time.Time
}

// NewTicket creates a ticket in open_wait_admin state with the opening
// comment at sequence 0. Title, category, and comment body are expected to
// be sanitized by the caller before they reach the domain.
func NewTicket(
	ownerID uint,
	title string,
	category string,
	openingComment string,
	authorName string,
) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(strings.TrimSpace(title)) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(strings.TrimSpace(openingComment)) == 0 {
		return nil, fmt.Errorf("comment is required")
	}

	first, err := NewComment(0, authorName, openingComment)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Ticket{
		ownerID:   ownerID,
		title:     title,
		category:  category,
		status:    vo.StatusOpenWaitAdmin,
		comments:  []*Comment{first},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	ownerID uint,
	title string,
	category string,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:        id,
		ownerID:   ownerID,
		title:     title,
		category:  category,
		status:    status,
		comments:  []*Comment{},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// LoadComments attaches comments loaded from persistence. Comments must be
// ordered by sequence ID ascending.
func (t *Ticket) LoadComments(comments []*Comment) {
	t.comments = comments
}

// NextSequenceID returns the sequence ID the next comment must carry:
// the highest existing sequence ID plus one, or 0 when no comments exist.
func (t *Ticket) NextSequenceID() uint {
	if len(t.comments) == 0 {
		return 0
	}
	return t.comments[len(t.comments)-1].SequenceID() + 1
}

// Reply appends a comment from the ticket owner and moves the ticket back
// to open_wait_admin. A closed ticket cannot be replied to.
func (t *Ticket) Reply(authorName string, body string) (*Comment, error) {
	if t.status.IsClosed() {
		return nil, ErrTicketClosed
	}
	if len(strings.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("comment is required")
	}

	comment, err := NewComment(t.NextSequenceID(), authorName, body)
	if err != nil {
		return nil, err
	}

	t.comments = append(t.comments, comment)
	t.status = vo.StatusOpenWaitAdmin
	t.updatedAt = biztime.NowUTC()

	return comment, nil
}
