// Package dto holds the read-side projections for tickets. Raw status and
// category codes are mapped to user-facing labels here; the stored values
// never change during projection.
package dto

import (
	"aster/internal/domain/ticket"
	vo "aster/internal/domain/ticket/valueobjects"
	"aster/internal/shared/biztime"
)

type CommentDTO struct {
	SequenceID uint   `json:"sequence_id"`
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
}

type TicketListItemDTO struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Status        string `json:"status"`
	StatusLabel   string `json:"status_label"`
	CreatedAt     string `json:"created_at"`
}

type TicketDTO struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Category      string       `json:"category"`
	CategoryLabel string       `json:"category_label"`
	Status        string       `json:"status"`
	StatusLabel   string       `json:"status_label"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
	Comments      []CommentDTO `json:"comments"`
}

var statusLabels = map[vo.TicketStatus]string{
	vo.StatusOpenWaitAdmin: "Waiting for staff reply",
	vo.StatusOpenWaitUser:  "Waiting for your reply",
	vo.StatusClosed:        "Closed",
}

var categoryLabels = map[string]string{
	"technical": "Technical issue",
	"billing":   "Billing",
	"account":   "Account",
	"feature":   "Feature request",
	"other":     "Other",
}

// StatusLabel returns the user-facing label for a stored status code.
func StatusLabel(status vo.TicketStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status.String()
}

// CategoryLabel returns the user-facing label for a stored category code.
// Unknown codes pass through unchanged; the category is a free-text
// classifier, not an enum.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:            t.ID(),
		Title:         t.Title(),
		Category:      t.Category(),
		CategoryLabel: CategoryLabel(t.Category()),
		Status:        t.Status().String(),
		StatusLabel:   StatusLabel(t.Status()),
		CreatedAt:     biztime.FormatDisplay(t.CreatedAt()),
	}
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	comments := t.Comments()
	commentDTOs := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, CommentDTO{
			SequenceID: c.SequenceID(),
			AuthorName: c.AuthorName(),
			Body:       c.Body(),
			CreatedAt:  biztime.FormatDisplay(c.CreatedAt()),
		})
	}

	return &TicketDTO{
		ID:            t.ID(),
		Title:         t.Title(),
		Category:      t.Category(),
		CategoryLabel: CategoryLabel(t.Category()),
		Status:        t.Status().String(),
		StatusLabel:   StatusLabel(t.Status()),
		CreatedAt:     biztime.FormatDisplay(t.CreatedAt()),
		UpdatedAt:     biztime.FormatDisplay(t.UpdatedAt()),
		Comments:      commentDTOs,
	}
}
