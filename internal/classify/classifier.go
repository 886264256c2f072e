package classify

import (
	"strings"

	"github.com/mufgmixi/cgss-checker/internal/model"
)

// input carries both text variants a rule may consume. Most rules read
// the normalized form; a few literal markers are bracket- or
// case-sensitive and must see the raw text, so each rule states
// explicitly which variant it matches.
type input struct {
	raw  string
	norm string
}

func (in input) hasGashaMarker() bool {
	return containsAny(in.norm, gashaMarkers)
}

func (in input) hasRerunMarker() bool {
	return strings.Contains(in.norm, rerunMarker)
}

// rule is one entry of the ordered rule table. Evaluation is
// first-match-wins; overlapping vocabulary between groups is resolved
// purely by table order.
type rule struct {
	match func(input) (model.CategoryLabel, bool)
	name  string
}

var rules = []rule{
	// Pre-enumerated exceptions come first: they contain vocabulary
	// (コラボガシャ, 限定コミュ) that would satisfy a later, more
	// general group with the wrong label.
	{
		name: "named collaboration event",
		match: func(in input) (model.CategoryLabel, bool) {
			for _, name := range collabEventNames {
				if strings.Contains(in.norm, strings.ToLower(name)) {
					return model.CategoryCollabEventReward, true
				}
			}
			return "", false
		},
	},
	{
		name: "stage for cinderella gasha",
		match: func(in input) (model.CategoryLabel, bool) {
			if strings.Contains(in.norm, "stage for cinderellaガシャ") {
				return model.CategoryLimitedGasha, true
			}
			return "", false
		},
	},
	{
		name: "april fools commu",
		match: func(in input) (model.CategoryLabel, bool) {
			if strings.Contains(in.norm, "4/1限定コミュ") {
				return model.CategoryEventReward, true
			}
			return "", false
		},
	},
	{
		name: "event-limited idol bracket (raw)",
		match: func(in input) (model.CategoryLabel, bool) {
			if strings.Contains(in.raw, "＜イベント限定アイドル＞") {
				return model.CategoryEventReward, true
			}
			return "", false
		},
	},
	{
		name: "collab gasha with limited idol bracket (raw)",
		match: func(in input) (model.CategoryLabel, bool) {
			if strings.Contains(in.norm, "コラボガシャ") && strings.Contains(in.raw, "＜期間限定アイドル＞") {
				return model.CategoryCollabLimitedGasha, true
			}
			return "", false
		},
	},
	{
		name: "festival gasha",
		match: func(in input) (model.CategoryLabel, bool) {
			if !containsAny(in.norm, fesKeywords) {
				return "", false
			}
			if in.hasRerunMarker() {
				return model.CategoryFesLimitedRerun, true
			}
			return model.CategoryFesLimited, true
		},
	},
	{
		name: "event reward",
		match: func(in input) (model.CategoryLabel, bool) {
			if in.hasGashaMarker() {
				// Limited gashas routinely name the event they
				// accompanied; draw vocabulary wins.
				return "", false
			}
			if containsAny(in.norm, eventKeywords) ||
				containsAny(in.raw, eventRewardPhrases) ||
				eventNameRE.MatchString(in.raw) {
				return model.CategoryEventReward, true
			}
			return "", false
		},
	},
	{
		name: "time-limited gasha",
		match: func(in input) (model.CategoryLabel, bool) {
			if !in.hasGashaMarker() {
				return "", false
			}
			limited := containsAny(in.norm, limitedGashaKeywords) ||
				datePeriodRE.MatchString(in.norm) ||
				containsAnyFold(in.raw, seasonalGashaNames)
			if !limited {
				return "", false
			}
			if in.hasRerunMarker() {
				return model.CategoryLimitedGashaRerun, true
			}
			return model.CategoryLimitedGasha, true
		},
	},
	{
		name: "standing pool",
		match: func(in input) (model.CategoryLabel, bool) {
			if containsAny(in.norm, standingPoolMarkers) {
				return model.CategoryPermanent, true
			}
			return "", false
		},
	},
}

// Classify maps a raw availability description and the card's rarity
// flag to exactly one category label. Blank text means the card has no
// special acquisition history and resolves to 恒常 immediately.
// Text no rule matches resolves to 恒常 for low-tier cards and 不明
// otherwise; 不明 is a first-class outcome, never an error.
func Classify(raw string, lowTier bool) model.CategoryLabel {
	if strings.TrimSpace(raw) == "" {
		return model.CategoryPermanent
	}

	in := input{raw: raw, norm: Normalize(raw)}
	for _, r := range rules {
		if label, ok := r.match(in); ok {
			return label
		}
	}

	if lowTier {
		return model.CategoryPermanent
	}
	return model.CategoryUnknown
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// containsAnyFold matches case-insensitively without normalizing the
// haystack in any other way.
func containsAnyFold(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
