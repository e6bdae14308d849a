package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "aster/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	t.Run("creates ticket with opening comment at sequence zero", func(t *testing.T) {
		tk, err := NewTicket(1, "Cannot connect", "technical", "The node times out", "alice")
		require.NoError(t, err)

		assert.Equal(t, uint(1), tk.OwnerID())
		assert.Equal(t, "Cannot connect", tk.Title())
		assert.Equal(t, "technical", tk.Category())
		assert.Equal(t, vo.StatusOpenWaitAdmin, tk.Status())
		assert.False(t, tk.CreatedAt().IsZero())

		comments := tk.Comments()
		require.Len(t, comments, 1)
		assert.Equal(t, uint(0), comments[0].SequenceID())
		assert.Equal(t, "alice", comments[0].AuthorName())
		assert.Equal(t, "The node times out", comments[0].Body())
	})

	tests := []struct {
		name        string
		ownerID     uint
		title       string
		comment     string
		authorName  string
		expectedErr string
	}{
		{
			name:        "missing owner",
			ownerID:     0,
			title:       "t",
			comment:     "c",
			authorName:  "alice",
			expectedErr: "owner ID is required",
		},
		{
			name:        "empty title",
			ownerID:     1,
			title:       "",
			comment:     "c",
			authorName:  "alice",
			expectedErr: "title is required",
		},
		{
			name:        "whitespace title",
			ownerID:     1,
			title:       "   ",
			comment:     "c",
			authorName:  "alice",
			expectedErr: "title is required",
		},
		{
			name:        "empty comment",
			ownerID:     1,
			title:       "t",
			comment:     "",
			authorName:  "alice",
			expectedErr: "comment is required",
		},
		{
			name:        "missing author name",
			ownerID:     1,
			title:       "t",
			comment:     "c",
			authorName:  "",
			expectedErr: "author name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.ownerID, tt.title, "other", tt.comment, tt.authorName)
			require.Error(t, err)
			assert.Nil(t, tk)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestTicket_Reply(t *testing.T) {
	newOpenTicket := func(t *testing.T) *Ticket {
		tk, err := NewTicket(1, "Cannot connect", "technical", "The node times out", "alice")
		require.NoError(t, err)
		return tk
	}

	t.Run("appends comment with next sequence ID", func(t *testing.T) {
		tk := newOpenTicket(t)

		c, err := tk.Reply("alice", "still broken")
		require.NoError(t, err)
		assert.Equal(t, uint(1), c.SequenceID())
		assert.Equal(t, vo.StatusOpenWaitAdmin, tk.Status())
		assert.Len(t, tk.Comments(), 2)
	})

	t.Run("sequence IDs stay strictly increasing over many replies", func(t *testing.T) {
		tk := newOpenTicket(t)

		const n = 5
		for i := 0; i < n; i++ {
			_, err := tk.Reply("alice", "follow-up")
			require.NoError(t, err)
		}

		comments := tk.Comments()
		require.Len(t, comments, n+1)
		for i, c := range comments {
			assert.Equal(t, uint(i), c.SequenceID())
		}
		assert.Equal(t, vo.StatusOpenWaitAdmin, tk.Status())
	})

	t.Run("reply moves open_wait_user back to open_wait_admin", func(t *testing.T) {
		tk, err := ReconstructTicket(7, 1, "Cannot connect", "technical", vo.StatusOpenWaitUser, tsNow(), tsNow())
		require.NoError(t, err)
		tk.LoadComments(mustComments(t, 0, 1))

		c, err := tk.Reply("alice", "answering staff")
		require.NoError(t, err)
		assert.Equal(t, uint(2), c.SequenceID())
		assert.Equal(t, vo.StatusOpenWaitAdmin, tk.Status())
	})

	t.Run("empty reply rejected without state change", func(t *testing.T) {
		tk := newOpenTicket(t)

		_, err := tk.Reply("alice", "  ")
		require.Error(t, err)
		assert.Len(t, tk.Comments(), 1)
	})

	t.Run("closed ticket rejects reply", func(t *testing.T) {
		tk, err := ReconstructTicket(7, 1, "Cannot connect", "technical", vo.StatusClosed, tsNow(), tsNow())
		require.NoError(t, err)
		tk.LoadComments(mustComments(t, 0))

		_, err = tk.Reply("alice", "please reopen")
		require.ErrorIs(t, err, ErrTicketClosed)
		assert.Len(t, tk.Comments(), 1)
		assert.Equal(t, vo.StatusClosed, tk.Status())
	})
}

func TestTicket_NextSequenceID(t *testing.T) {
	tk, err := ReconstructTicket(3, 1, "title", "other", vo.StatusOpenWaitAdmin, tsNow(), tsNow())
	require.NoError(t, err)

	assert.Equal(t, uint(0), tk.NextSequenceID())

	tk.LoadComments(mustComments(t, 0, 1, 2))
	assert.Equal(t, uint(3), tk.NextSequenceID())
}

func TestTicket_IsOwnedBy(t *testing.T) {
	tk, err := NewTicket(42, "title", "billing", "body", "bob")
	require.NoError(t, err)

	assert.True(t, tk.IsOwnedBy(42))
	assert.False(t, tk.IsOwnedBy(7))
}
