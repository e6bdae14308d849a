package usecases

import (
	"context"
	"strings"
	"time"

	"aster/internal/domain/ticket"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
	"aster/internal/shared/sanitize"
)

type CreateTicketCommand struct {
	OwnerID    uint
	AuthorName string
	Title      string
	Category   string
	Comment    string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	sanitizer  sanitize.Sanitizer
	publisher  EventPublisher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	sanitizer sanitize.Sanitizer,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "owner_id", cmd.OwnerID, "title", cmd.Title)

	title := uc.sanitizer.Sanitize(cmd.Title)
	category := uc.sanitizer.Sanitize(cmd.Category)
	comment := uc.sanitizer.Sanitize(cmd.Comment)

	if len(strings.TrimSpace(title)) == 0 {
		return nil, errors.NewValidationError("title is required")
	}
	if len(strings.TrimSpace(comment)) == 0 {
		return nil, errors.NewValidationError("comment is required")
	}
	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	newTicket, err := ticket.NewTicket(cmd.OwnerID, title, category, comment, cmd.AuthorName)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// The ticket is committed; notification delivery is best-effort and
	// must never fail the creation.
	if pubErr := uc.publisher.Publish(ticket.NewTicketOpenedEvent(
		newTicket.ID(),
		newTicket.OwnerID(),
		newTicket.Title(),
		newTicket.CreatedAt(),
	)); pubErr != nil {
		uc.logger.Warnw("failed to publish ticket opened event", "ticket_id", newTicket.ID(), "error", pubErr)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
