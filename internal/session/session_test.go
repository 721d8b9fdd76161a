package session

import (
	"testing"

	"sheetviz/adapters/classify"
	"sheetviz/domain/core"
	"sheetviz/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ReplaceInvalidatesClassification(t *testing.T) {
	sess := NewSession(core.SessionID(core.NewID()), classify.NewDefault())

	_, ok := sess.Snapshot()
	assert.False(t, ok, "fresh session has no table")

	sess.Replace(table.Sample(), "sample")
	snap, ok := sess.Snapshot()
	require.True(t, ok)
	assert.Equal(t, []string{"Sales", "Profit", "Growth_Rate"}, snap.Classification.Numeric())

	// A new upload replaces the table wholesale; the old columns are gone
	// from the classification.
	replacement, err := table.New([]table.Column{
		{Name: "date", Values: []string{"2024-01-01", "2024-02-01"}},
		{Name: "count", Values: []string{"3", "4"}},
	})
	require.NoError(t, err)
	sess.Replace(replacement, "upload:new.csv")

	snap, ok = sess.Snapshot()
	require.True(t, ok)
	assert.Equal(t, []string{"count"}, snap.Classification.Numeric())
	assert.Equal(t, []string{"date"}, snap.Classification.Temporal())
	assert.False(t, snap.Classification.Has("Sales"))
	assert.Equal(t, "upload:new.csv", snap.Source)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := NewManager(classify.NewDefault())

	a := m.GetOrCreate("")
	b := m.GetOrCreate("")
	require.NotEqual(t, a.ID(), b.ID())

	a.Replace(table.Sample(), "sample")
	assert.True(t, a.Loaded())
	assert.False(t, b.Loaded(), "loading a table in one session must not leak into another")

	again := m.GetOrCreate(a.ID())
	assert.Same(t, a, again)
	assert.Equal(t, 2, m.Count())
}

func TestManager_Get(t *testing.T) {
	m := NewManager(classify.NewDefault())

	_, ok := m.Get(core.SessionID("missing"))
	assert.False(t, ok)

	s := m.GetOrCreate("")
	got, ok := m.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)
}
