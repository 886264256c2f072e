package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mufgmixi/cgss-checker/internal/model"
)

type fakeWriter struct {
	calls []struct {
		id       string
		category model.CategoryLabel
		status   model.ClassificationStatus
	}
}

func (f *fakeWriter) UpdateCategory(_ context.Context, id string, category model.CategoryLabel, status model.ClassificationStatus) (bool, error) {
	f.calls = append(f.calls, struct {
		id       string
		category model.CategoryLabel
		status   model.ClassificationStatus
	}{id, category, status})
	return true, nil
}

func reviewCards() []model.Card {
	return []model.Card{
		{ID: "10001", Name: "カードA", Rarity: model.RaritySSRare, Availability: "謎A"},
		{ID: "10002", Name: "カードB", Rarity: model.RaritySRare, Availability: "謎B"},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReviewAssignAndSkip(t *testing.T) {
	writer := &fakeWriter{}
	m := NewReview(context.Background(), writer, reviewCards())

	// Pick choice 3 (イベント報酬) for the first card.
	updated, cmd := m.Update(key("3"))
	m = updated.(ReviewModel)
	require.NotNil(t, cmd)
	assert.True(t, m.saving)

	updated, _ = m.Update(cmd())
	m = updated.(ReviewModel)
	assert.False(t, m.saving)
	assert.Equal(t, 1, m.Assigned())

	require.Len(t, writer.calls, 1)
	assert.Equal(t, "10001", writer.calls[0].id)
	assert.Equal(t, model.CategoryEventReward, writer.calls[0].category)
	assert.Equal(t, model.StatusUserModified, writer.calls[0].status)

	// Skip the second card; the session finishes.
	updated, _ = m.Update(key("s"))
	m = updated.(ReviewModel)
	assert.True(t, m.done)
	assert.Contains(t, m.View(), "レビュー完了")
}

func TestReviewQuit(t *testing.T) {
	m := NewReview(context.Background(), &fakeWriter{}, reviewCards())

	updated, cmd := m.Update(key("q"))
	m = updated.(ReviewModel)
	require.NotNil(t, cmd)
	assert.True(t, m.done)
}

func TestReviewIgnoresKeysWhileSaving(t *testing.T) {
	writer := &fakeWriter{}
	m := NewReview(context.Background(), writer, reviewCards())

	updated, _ := m.Update(key("1"))
	m = updated.(ReviewModel)
	require.True(t, m.saving)

	updated, cmd := m.Update(key("2"))
	m = updated.(ReviewModel)
	assert.Nil(t, cmd)
	assert.True(t, m.saving)
}

func TestChoiceIndex(t *testing.T) {
	assert.Equal(t, 0, choiceIndex("1"))
	assert.Equal(t, 8, choiceIndex("9"))
	assert.Equal(t, -1, choiceIndex("0"))
	assert.Equal(t, -1, choiceIndex("x"))
	assert.Equal(t, -1, choiceIndex("12"))
}

func TestReviewViewShowsCard(t *testing.T) {
	m := NewReview(context.Background(), &fakeWriter{}, reviewCards())
	view := m.View()
	assert.Contains(t, view, "カードA")
	assert.Contains(t, view, "謎A")
	assert.Contains(t, view, "イベント報酬")
}
