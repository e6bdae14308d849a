package models

type TicketModel struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"not null;index"`
	Title     string `gorm:"size:200;not null"`
	Category  string `gorm:"size:50;not null"`
	Status    string `gorm:"size:20;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketCommentModel stores one entry of a ticket's append-only comment
// log. The unique index on (ticket_id, seq_id) backs up the row-locked
// sequence assignment: a racing duplicate fails the insert instead of
// corrupting the log.
type TicketCommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;uniqueIndex:idx_ticket_seq"`
	SeqID      uint   `gorm:"not null;uniqueIndex:idx_ticket_seq"`
	AuthorName string `gorm:"size:100;not null"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}
