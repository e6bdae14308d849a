package usecases

import (
	"context"

	"aster/internal/application/ticket/dto"
	"aster/internal/domain/ticket"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type ListTicketsQuery struct {
	OwnerID uint
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list tickets use case", "owner_id", query.OwnerID)

	if query.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	tickets, err := uc.ticketRepo.FindByOwner(ctx, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "owner_id", query.OwnerID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets: items,
		Total:   int64(len(items)),
	}, nil
}
