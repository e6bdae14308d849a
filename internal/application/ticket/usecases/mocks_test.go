package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"aster/internal/domain/ticket"
	"aster/internal/shared/db"
	"aster/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	AppendCommentFunc     func(ctx context.Context, ticketID uint, c *ticket.Comment) error
	FindByIDFunc          func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByIDForUpdateFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByOwnerFunc       func(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) AppendComment(ctx context.Context, ticketID uint, c *ticket.Comment) error {
	if m.AppendCommentFunc != nil {
		return m.AppendCommentFunc(ctx, ticketID, c)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepository) FindByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(ctx, id)
	}
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepository) FindByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

type mockPublisher struct {
	PublishFunc func(event any) error
	published   []any
}

func (m *mockPublisher) Publish(event any) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testTxManager returns a TransactionManager backed by an in-memory sqlite
// database so the transactional use cases run against a real transaction.
func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}
