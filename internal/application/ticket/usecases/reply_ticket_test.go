package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/domain/ticket"
	vo "aster/internal/domain/ticket/valueobjects"
	"aster/internal/shared/errors"
	"aster/internal/shared/sanitize"
)

func replyTestTicket(t *testing.T, status vo.TicketStatus, seqs ...uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(42, 7, "Cannot connect", "technical", status,
		time.Now().UTC().Add(-time.Hour), time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	comments := make([]*ticket.Comment, 0, len(seqs))
	for _, seq := range seqs {
		c, err := ticket.ReconstructComment(seq, "alice", fmt.Sprintf("comment %d", seq), time.Now().UTC())
		require.NoError(t, err)
		comments = append(comments, c)
	}
	tk.LoadComments(comments)
	return tk
}

func TestReplyTicketUseCase_Execute(t *testing.T) {
	t.Run("appends comment with next sequence ID and publishes event", func(t *testing.T) {
		tk := replyTestTicket(t, vo.StatusOpenWaitUser, 0, 1)
		var appended *ticket.Comment
		var updated *ticket.Ticket
		repo := &mockTicketRepository{
			FindByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				assert.Equal(t, uint(42), id)
				return tk, nil
			},
			AppendCommentFunc: func(ctx context.Context, ticketID uint, c *ticket.Comment) error {
				assert.Equal(t, uint(42), ticketID)
				appended = c
				return nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}
		pub := &mockPublisher{}
		uc := NewReplyTicketUseCase(repo, sanitize.NewStrict(), testTxManager(t), pub, testLogger())

		result, err := uc.Execute(context.Background(), ReplyTicketCommand{
			TicketID:   42,
			OwnerID:    7,
			AuthorName: "alice",
			Comment:    "Still broken.",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(2), result.SequenceID)
		assert.Equal(t, "open_wait_admin", result.Status)

		require.NotNil(t, appended)
		assert.Equal(t, uint(2), appended.SequenceID())
		assert.Equal(t, "Still broken.", appended.Body())
		require.NotNil(t, updated)
		assert.True(t, updated.Status().IsOpenWaitAdmin())

		require.Len(t, pub.published, 1)
		ev, ok := pub.published[0].(ticket.TicketRepliedEvent)
		require.True(t, ok)
		assert.Equal(t, uint(42), ev.TicketID)
		assert.Equal(t, uint(2), ev.SequenceID)
	})

	t.Run("empty comment after sanitizing is rejected", func(t *testing.T) {
		findCalled := false
		repo := &mockTicketRepository{
			FindByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				findCalled = true
				return nil, ticket.ErrNotFound
			},
		}
		uc := NewReplyTicketUseCase(repo, sanitize.NewStrict(), testTxManager(t), &mockPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), ReplyTicketCommand{
			TicketID: 42, OwnerID: 7, AuthorName: "alice", Comment: "<script>x</script>",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.False(t, findCalled)
	})

	t.Run("missing ticket", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, ticket.ErrNotFound
			},
		}
		uc := NewReplyTicketUseCase(repo, sanitize.NewStrict(), testTxManager(t), &mockPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), ReplyTicketCommand{
			TicketID: 99, OwnerID: 7, AuthorName: "alice", Comment: "hello",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ticket owned by someone else looks missing", func(t *testing.T) {
		tk := replyTestTicket(t, vo.StatusOpenWaitAdmin, 0)
		appendCalled := false
		repo := &mockTicketRepository{
			FindByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
			AppendCommentFunc: func(ctx context.Context, ticketID uint, c *ticket.Comment) error {
				appendCalled = true
				return nil
			},
		}
		uc := NewReplyTicketUseCase(repo, sanitize.NewStrict(), testTxManager(t), &mockPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), ReplyTicketCommand{
			TicketID: 42, OwnerID: 8, AuthorName: "mallory", Comment: "hello",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.False(t, appendCalled)
	})

	t.Run("closed ticket is a conflict", func(t *testing.T) {
		tk := replyTestTicket(t, vo.StatusClosed, 0, 1)
		repo := &mockTicketRepository{
			FindByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		pub := &mockPublisher{}
		uc := NewReplyTicketUseCase(repo, sanitize.NewStrict(), testTxManager(t), pub, testLogger())

		_, err := uc.Execute(context.Background(), ReplyTicketCommand{
			TicketID: 42, OwnerID: 7, AuthorName: "alice", Comment: "please reopen",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		assert.Empty(t, pub.published)
	})

	t.Run("append failure rolls back without publishing", func(t *testing.T) {
		tk := replyTestTicket(t, vo.StatusOpenWaitUser, 0)
		repo := &mockTicketRepository{
			FindByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
			AppendCommentFunc: func(ctx context.Context, ticketID uint, c *ticket.Comment) error {
				return fmt.Errorf("duplicate sequence")
			},
		}
		pub := &mockPublisher{}
		uc := NewReplyTicketUseCase(repo, sanitize.NewStrict(), testTxManager(t), pub, testLogger())

		result, err := uc.Execute(context.Background(), ReplyTicketCommand{
			TicketID: 42, OwnerID: 7, AuthorName: "alice", Comment: "hello",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, pub.published)
	})
}
