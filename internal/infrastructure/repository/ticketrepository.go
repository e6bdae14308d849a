package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aster/internal/domain/ticket"
	"aster/internal/infrastructure/persistence/mappers"
	"aster/internal/infrastructure/persistence/models"
	db "aster/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save inserts the ticket row and its opening comment in one transaction.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(txn *gorm.DB) error {
		if err := txn.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		for _, c := range t.Comments() {
			commentModel := r.mapper.CommentToModel(model.ID, c)
			if err := txn.Create(commentModel).Error; err != nil {
				return fmt.Errorf("failed to save opening comment: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) AppendComment(ctx context.Context, ticketID uint, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(ticketID, c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append comment: %w", err)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.findByID(ctx, id, false)
}

// FindByIDForUpdate locks the ticket row until the surrounding transaction
// ends. Callers must run inside TransactionManager.RunInTransaction.
func (r *TicketRepository) FindByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.findByID(ctx, id, true)
}

func (r *TicketRepository) findByID(ctx context.Context, id uint, forUpdate bool) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx
	// SQLite has no SELECT ... FOR UPDATE; its single-writer transaction
	// lock covers the same guarantee there.
	if forUpdate && tx.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) FindByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

// loadComments loads the full comment log in a single query, ordered by
// sequence ID ascending.
func (r *TicketRepository) loadComments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	var commentModels []models.TicketCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("seq_id ASC").
		Find(&commentModels).Error; err != nil {
		return fmt.Errorf("failed to load ticket comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return err
		}
		comments = append(comments, c)
	}

	t.LoadComments(comments)
	return nil
}
