package mappers

import (
	"fmt"
	"time"

	"aster/internal/domain/ticket"
	vo "aster/internal/domain/ticket/valueobjects"
	"aster/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	// Comments must be loaded separately by the repository.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(ticketID uint, c *ticket.Comment) *models.TicketCommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.TicketCommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:        t.ID(),
		OwnerID:   t.OwnerID(),
		Title:     t.Title(),
		Category:  t.Category(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket status (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.OwnerID,
		model.Title,
		model.Category,
		status,
		ticketConvertMillisToTime(model.CreatedAt),
		ticketConvertMillisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(ticketID uint, c *ticket.Comment) *models.TicketCommentModel {
	return &models.TicketCommentModel{
		TicketID:   ticketID,
		SeqID:      c.SequenceID(),
		AuthorName: c.AuthorName(),
		Body:       c.Body(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.TicketCommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.SeqID,
		model.AuthorName,
		model.Body,
		ticketConvertMillisToTime(model.CreatedAt),
	)
}

func ticketConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
