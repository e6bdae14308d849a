package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aster/internal/shared/biztime"
)

func tsNow() time.Time {
	return biztime.NowUTC()
}

func mustComments(t *testing.T, seqs ...uint) []*Comment {
	t.Helper()
	comments := make([]*Comment, 0, len(seqs))
	for _, seq := range seqs {
		c, err := ReconstructComment(seq, "alice", "body", tsNow())
		require.NoError(t, err)
		comments = append(comments, c)
	}
	return comments
}
