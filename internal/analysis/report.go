// Package analysis renders audit reports over the classified catalog.
package analysis

import (
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mufgmixi/cgss-checker/internal/model"
)

// WriteCategoryReport renders the per-category card counts in
// classification priority order, with a total row.
func WriteCategoryReport(w io.Writer, counts map[model.CategoryLabel]int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"カテゴリ", "枚数"})

	total := 0
	for _, label := range model.AllCategories() {
		n, ok := counts[label]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{string(label), n})
		total += n
	}

	// Labels outside the taxonomy deserve a row too; they point at
	// corrupted or hand-edited data.
	var extras []string
	for label := range counts {
		if !label.IsValid() {
			extras = append(extras, string(label))
		}
	}
	sort.Strings(extras)
	for _, label := range extras {
		t.AppendRow(table.Row{label + " (!)", counts[model.CategoryLabel(label)]})
		total += counts[model.CategoryLabel(label)]
	}

	t.AppendFooter(table.Row{"合計", total})
	t.Render()
}

// WriteUnknownReport lists the cards whose availability text no rule
// matched; each row is a candidate for a new vocabulary entry.
func WriteUnknownReport(w io.Writer, cards []model.Card) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "名前", "レアリティ", "入手方法"})
	for _, card := range cards {
		t.AppendRow(table.Row{card.ID, card.Name, string(card.Rarity), card.Availability})
	}
	t.Render()
}

// UniqueAvailabilities returns the distinct non-empty availability
// texts of the given cards, in first-seen order.
func UniqueAvailabilities(cards []model.Card) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, card := range cards {
		if card.Availability == "" {
			continue
		}
		if _, ok := seen[card.Availability]; ok {
			continue
		}
		seen[card.Availability] = struct{}{}
		out = append(out, card.Availability)
	}
	return out
}
