package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftbound-tools/riftdrill/internal/domain"
)

func sessionOf(cardIDs ...string) *Session {
	sess := &Session{}
	for _, id := range cardIDs {
		sess.Items = append(sess.Items, domain.NewSessionItem(id, false))
	}
	return sess
}

func TestOnRatedReinsertsFailedCard(t *testing.T) {
	t.Parallel()
	sess := sessionOf("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	c := NewRelearnController()

	// Failing card "a" at index 0 reinserts it at index 0+1+5 = 6.
	require.True(t, c.OnRated(sess, 0, "a", 1))
	assert.Equal(t, 11, sess.Len())
	assert.Equal(t, "a", sess.Items[6].CardID)
	assert.True(t, sess.Items[6].IsRelearn)
	assert.Equal(t, 1, c.Relearns("a"))
}

func TestOnRatedAppendsWhenQueueIsShort(t *testing.T) {
	t.Parallel()
	sess := sessionOf("a", "b", "c")
	c := NewRelearnController()

	require.True(t, c.OnRated(sess, 2, "c", 0))
	assert.Equal(t, 4, sess.Len())
	assert.Equal(t, "c", sess.Items[3].CardID)
}

func TestOnRatedPassingQualityDoesNothing(t *testing.T) {
	t.Parallel()
	sess := sessionOf("a", "b", "c", "d", "e", "f")
	c := NewRelearnController()

	for q := 3; q <= 5; q++ {
		assert.False(t, c.OnRated(sess, 0, "a", q), "quality %d must not reinsert", q)
	}
	assert.Equal(t, 6, sess.Len())
}

func TestOnRatedBoundedPerCard(t *testing.T) {
	t.Parallel()
	sess := sessionOf("a", "b", "c", "d", "e", "f")
	c := NewRelearnController()

	// A card failed three times is reinserted at most twice.
	assert.True(t, c.OnRated(sess, 0, "a", 0))
	assert.True(t, c.OnRated(sess, 3, "a", 1))
	assert.False(t, c.OnRated(sess, 6, "a", 2))

	assert.Equal(t, 8, sess.Len())
	assert.Equal(t, 2, c.Relearns("a"))

	// Other cards have their own allowance.
	assert.True(t, c.OnRated(sess, 1, "b", 0))
}

func TestInsertAtShiftsLaterItems(t *testing.T) {
	t.Parallel()
	sess := sessionOf("a", "b", "c")

	sess.InsertAt(1, domain.NewRelearnItem("x"))
	ids := make([]string, sess.Len())
	for i, item := range sess.Items {
		ids[i] = item.CardID
	}
	assert.Equal(t, []string{"a", "x", "b", "c"}, ids)
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	sess := sessionOf("a", "b", "c")
	sess.Items[0].RecordAnswer("right", true, 0)
	sess.Items[1].RecordAnswer("wrong", false, 0)

	sum := sess.Summarize()
	assert.Equal(t, 2, sum.Answered)
	assert.Equal(t, 1, sum.Correct)
}
