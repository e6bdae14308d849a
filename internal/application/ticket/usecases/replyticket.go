package usecases

import (
	"context"
	goerrors "errors"
	"strings"
	"time"

	"aster/internal/domain/ticket"
	"aster/internal/shared/db"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
	"aster/internal/shared/sanitize"
)

type ReplyTicketCommand struct {
	TicketID   uint
	OwnerID    uint
	AuthorName string
	Comment    string
}

type ReplyTicketResult struct {
	SequenceID uint
	Status     string
	CreatedAt  time.Time
}

type ReplyTicketUseCase struct {
	ticketRepo ticket.Repository
	sanitizer  sanitize.Sanitizer
	txMgr      *db.TransactionManager
	publisher  EventPublisher
	logger     logger.Interface
}

func NewReplyTicketUseCase(
	ticketRepo ticket.Repository,
	sanitizer sanitize.Sanitizer,
	txMgr *db.TransactionManager,
	publisher EventPublisher,
	logger logger.Interface,
) *ReplyTicketUseCase {
	return &ReplyTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		txMgr:      txMgr,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ReplyTicketUseCase) Execute(ctx context.Context, cmd ReplyTicketCommand) (*ReplyTicketResult, error) {
	uc.logger.Infow("executing reply ticket use case", "ticket_id", cmd.TicketID, "owner_id", cmd.OwnerID)

	comment := uc.sanitizer.Sanitize(cmd.Comment)
	if len(strings.TrimSpace(comment)) == 0 {
		return nil, errors.NewValidationError("comment is required")
	}

	var (
		replied    *ticket.Comment
		repliedTo  *ticket.Ticket
	)

	// Lock the ticket row for the duration of the append so the sequence
	// ID assignment and the status change are atomic with respect to
	// concurrent replies on the same ticket.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.FindByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			if goerrors.Is(err, ticket.ErrNotFound) {
				return errors.NewNotFoundError("ticket not found")
			}
			uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		// Same response as a missing ticket so a non-owner cannot probe
		// which ticket IDs exist.
		if !t.IsOwnedBy(cmd.OwnerID) {
			return errors.NewNotFoundError("ticket not found")
		}

		c, err := t.Reply(cmd.AuthorName, comment)
		if err != nil {
			if goerrors.Is(err, ticket.ErrTicketClosed) {
				return errors.NewConflictError("ticket is closed")
			}
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.AppendComment(txCtx, t.ID(), c); err != nil {
			uc.logger.Errorw("failed to append comment", "ticket_id", t.ID(), "error", err)
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
			return err
		}

		replied = c
		repliedTo = t
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if pubErr := uc.publisher.Publish(ticket.NewTicketRepliedEvent(
		repliedTo.ID(),
		repliedTo.OwnerID(),
		repliedTo.Title(),
		replied.SequenceID(),
		replied.CreatedAt(),
	)); pubErr != nil {
		uc.logger.Warnw("failed to publish ticket replied event", "ticket_id", repliedTo.ID(), "error", pubErr)
	}

	uc.logger.Infow("ticket replied successfully",
		"ticket_id", repliedTo.ID(),
		"sequence_id", replied.SequenceID())

	return &ReplyTicketResult{
		SequenceID: replied.SequenceID(),
		Status:     repliedTo.Status().String(),
		CreatedAt:  replied.CreatedAt(),
	}, nil
}
