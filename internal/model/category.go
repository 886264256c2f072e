package model

// CategoryLabel is the normalized acquisition category of a card.
// The string values are the labels persisted in the catalog since the
// first release; they must not change.
type CategoryLabel string

// Category labels, in classification priority order.
const (
	// CategoryCollabEventReward is a reward from a named cross-promotion event.
	CategoryCollabEventReward CategoryLabel = "イベント報酬(コラボ)"
	// CategoryCollabLimitedGasha is a collaboration-themed time-limited gasha.
	CategoryCollabLimitedGasha CategoryLabel = "期間限定ガシャ(コラボ)"
	// CategoryEventReward is a reward from a standard in-game event.
	CategoryEventReward CategoryLabel = "イベント報酬"
	// CategoryFesLimited is a festival-tier limited gasha.
	CategoryFesLimited CategoryLabel = "フェス限定"
	// CategoryFesLimitedRerun is a festival-tier gasha marked as a rerun.
	CategoryFesLimitedRerun CategoryLabel = "フェス限定(復刻)"
	// CategoryLimitedGasha is an ordinary time-limited gasha.
	CategoryLimitedGasha CategoryLabel = "期間限定ガシャ"
	// CategoryLimitedGashaRerun is a time-limited gasha marked as a rerun.
	CategoryLimitedGashaRerun CategoryLabel = "期間限定ガシャ(復刻)"
	// CategoryPermanent marks cards obtainable indefinitely.
	CategoryPermanent CategoryLabel = "恒常"
	// CategoryUnknown marks availability text no rule matched.
	CategoryUnknown CategoryLabel = "不明"
)

// AllCategories lists every label in priority order.
func AllCategories() []CategoryLabel {
	return []CategoryLabel{
		CategoryCollabEventReward,
		CategoryCollabLimitedGasha,
		CategoryEventReward,
		CategoryFesLimited,
		CategoryFesLimitedRerun,
		CategoryLimitedGasha,
		CategoryLimitedGashaRerun,
		CategoryPermanent,
		CategoryUnknown,
	}
}

// IsValid reports whether the label is one of the defined categories.
func (c CategoryLabel) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}
