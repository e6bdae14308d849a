package ticket

import (
	"fmt"
	"time"

	"aster/internal/shared/biztime"
)

// Comment is one message in a ticket's conversation. Comments are immutable
// once written; the sequence ID orders them within a ticket.
type Comment struct {
	sequenceID uint
	authorName string
	body       string
	createdAt  time.Time
}

func NewComment(
	sequenceID uint,
	authorName string,
	body string,
) (*Comment, error) {
	if len(authorName) == 0 {
		return nil, fmt.Errorf("author name is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("comment body cannot be empty")
	}
	if len(body) > 10000 {
		return nil, fmt.Errorf("comment body exceeds maximum length of 10000 characters")
	}

	return &Comment{
		sequenceID: sequenceID,
		authorName: authorName,
		body:       body,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	sequenceID uint,
	authorName string,
	body string,
	createdAt time.Time,
) (*Comment, error) {
	if len(authorName) == 0 {
		return nil, fmt.Errorf("author name is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("comment body cannot be empty")
	}

	return &Comment{
		sequenceID: sequenceID,
		authorName: authorName,
		body:       body,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) SequenceID() uint {
	return c.sequenceID
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}
