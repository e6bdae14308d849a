package usecases

import (
	"context"
	goerrors "errors"

	"aster/internal/application/ticket/dto"
	"aster/internal/domain/ticket"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	OwnerID  uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing get ticket use case", "ticket_id", query.TicketID, "owner_id", query.OwnerID)

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		if goerrors.Is(err, ticket.ErrNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	// Same response as a missing ticket so a non-owner cannot probe
	// which ticket IDs exist.
	if !t.IsOwnedBy(query.OwnerID) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return dto.ToTicketDTO(t), nil
}
