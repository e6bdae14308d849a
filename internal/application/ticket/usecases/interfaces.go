package usecases

import (
	"context"

	"aster/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ReplyTicketExecutor interface {
	Execute(ctx context.Context, cmd ReplyTicketCommand) (*ReplyTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

// EventPublisher hands notification events to the asynchronous dispatcher.
// Publishing happens after the mutation is committed; publish failures are
// logged by the use case and never surfaced to the caller.
type EventPublisher interface {
	Publish(event any) error
}
