package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mufgmixi/cgss-checker/internal/model"
)

// CategoryWriter is the slice of the storage layer the review screen
// needs.
type CategoryWriter interface {
	UpdateCategory(ctx context.Context, id string, category model.CategoryLabel, status model.ClassificationStatus) (bool, error)
}

// labelChoices are the labels offered during review, keyed 1-9 in
// classification priority order.
var labelChoices = model.AllCategories()

type assignedMsg struct {
	err     error
	changed bool
}

// ReviewModel walks the 不明 cards one at a time and stores manual
// labels as USER_MODIFIED classifications.
type ReviewModel struct {
	store    CategoryWriter
	ctx      context.Context
	err      error
	cards    []model.Card
	index    int
	assigned int
	skipped  int
	progress progress.Model
	width    int
	saving   bool
	done     bool
}

// NewReview creates a review session over the given cards.
func NewReview(ctx context.Context, store CategoryWriter, cards []model.Card) ReviewModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false

	return ReviewModel{
		store:    store,
		ctx:      ctx,
		cards:    cards,
		progress: prog,
		width:    80,
	}
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-4, 40)
		return m, nil

	case assignedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.changed {
			m.assigned++
		}
		return m.advance(), nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		case "s":
			if !m.done {
				m.skipped++
				return m.advance(), nil
			}
		default:
			if m.done {
				return m, nil
			}
			if idx := choiceIndex(msg.String()); idx >= 0 {
				m.saving = true
				m.err = nil
				return m, m.assignCmd(labelChoices[idx])
			}
		}
	}
	return m, nil
}

func (m ReviewModel) advance() ReviewModel {
	m.index++
	if m.index >= len(m.cards) {
		m.done = true
	}
	return m
}

func (m ReviewModel) assignCmd(label model.CategoryLabel) tea.Cmd {
	card := m.cards[m.index]
	return func() tea.Msg {
		changed, err := m.store.UpdateCategory(m.ctx, card.ID, label, model.StatusUserModified)
		return assignedMsg{err: err, changed: changed}
	}
}

// View implements tea.Model.
func (m ReviewModel) View() string {
	var b strings.Builder

	if m.done || m.index >= len(m.cards) {
		b.WriteString(titleStyle.Render("レビュー完了"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d 件にラベルを設定、%d 件をスキップしました。\n", m.assigned, m.skipped)
		return b.String()
	}

	card := m.cards[m.index]

	b.WriteString(titleStyle.Render(fmt.Sprintf("不明カードのレビュー (%d/%d)", m.index+1, len(m.cards))))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(m.index) / float64(len(m.cards))))
	b.WriteString("\n\n")

	b.WriteString(cardNameStyle.Render(fmt.Sprintf("%s  [%s / %s]", card.Name, card.Rarity.Code(), card.ID)))
	b.WriteString("\n")
	b.WriteString(availabilityStyle.Render("入手方法: " + card.Availability))
	b.WriteString("\n")

	for i, label := range labelChoices {
		b.WriteString(choiceStyle.Render(fmt.Sprintf("  %d) %s", i+1, label)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("保存に失敗しました: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.saving {
		b.WriteString(helpStyle.Render("保存中..."))
	} else {
		b.WriteString(helpStyle.Render("1-9: ラベルを設定  s: スキップ  q: 終了"))
	}
	return b.String()
}

// Assigned reports how many cards received a manual label.
func (m ReviewModel) Assigned() int {
	return m.assigned
}

func choiceIndex(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	idx := int(key[0] - '1')
	if idx >= len(labelChoices) {
		return -1
	}
	return idx
}
