package classify

import (
	"testing"

	"github.com/mufgmixi/cgss-checker/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		lowTier bool
		want    model.CategoryLabel
	}{
		// Blank text means no special acquisition history.
		{
			name: "empty text is permanent",
			text: "",
			want: model.CategoryPermanent,
		},
		{
			name:    "empty text is permanent regardless of rarity",
			text:    "",
			lowTier: true,
			want:    model.CategoryPermanent,
		},
		{
			name: "whitespace-only text is permanent",
			text: "   \t ",
			want: model.CategoryPermanent,
		},

		// Named collaboration events beat every general rule.
		{
			name: "harmonics collab event",
			text: "イベント「ハーモニクス」ポイント報酬",
			want: model.CategoryCollabEventReward,
		},
		{
			name: "momoclo collab event",
			text: "ももクロ×デレステコラボイベント 報酬",
			want: model.CategoryCollabEventReward,
		},
		{
			name: "hoshimachi collab event",
			text: "星街すいせい×デレステコラボ",
			want: model.CategoryCollabEventReward,
		},

		// Literal pre-enumerated exceptions.
		{
			name: "stage for cinderella gasha is a limited gasha",
			text: "STAGE FOR CINDERELLAガシャ",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "april fools commu is an event reward",
			text: "4/1限定コミュ",
			want: model.CategoryEventReward,
		},
		{
			name: "event-limited idol bracket matches raw text",
			text: "コラボガシャ＜イベント限定アイドル＞",
			want: model.CategoryEventReward,
		},
		{
			name: "collab gasha with limited idol bracket",
			text: "コラボガシャ＜期間限定アイドル＞",
			want: model.CategoryCollabLimitedGasha,
		},

		// Festival tier.
		{
			name: "cinderella fes",
			text: "シンデレラフェス限定 プラチナオーディションガシャ",
			want: model.CategoryFesLimited,
		},
		{
			name: "fes rerun",
			text: "シンデレラフェス限定(復刻)",
			want: model.CategoryFesLimitedRerun,
		},
		{
			name: "noir limited",
			text: "ノワール限定アイドル",
			want: model.CategoryFesLimited,
		},
		{
			name: "dominant gasha",
			text: "ドミナントガシャ",
			want: model.CategoryFesLimited,
		},

		// Event rewards, gated on the absence of gasha vocabulary.
		{
			name: "point reward event",
			text: "イベント「ススメ！シンデレラロード」ポイント報酬",
			want: model.CategoryEventReward,
		},
		{
			name: "live groove ranking",
			text: "LIVE Groove ランキング報酬",
			want: model.CategoryEventReward,
		},
		{
			name: "katakana live reward normalizes into event vocabulary",
			text: "期間中のライブ報酬",
			want: model.CategoryEventReward,
		},
		{
			name: "carnival medal chance bracket",
			text: "＜カーニバルメダルチャンス報酬＞",
			want: model.CategoryEventReward,
		},
		{
			name: "event keyword with gasha marker never wins",
			text: "イベント「開催」プラチナガシャ",
			want: model.CategoryPermanent,
		},

		// Time-limited gashas.
		{
			name: "explicit limited idol",
			text: "プラチナガシャ＜期間限定アイドル＞",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "limited gasha rerun",
			text: "期間限定ガシャ(復刻)",
			want: model.CategoryLimitedGashaRerun,
		},
		{
			name: "date range qualifies a gasha as limited",
			text: "プラチナガシャ 2020/04/01 ～ 2020/04/15",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "kanji date range",
			text: "プラチナガシャ 2019年7月1日 ～ 7月15日",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "date range separated by full-width spaces",
			text: "プラチナガシャ 2020/4/1　～　2020/4/15",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "fullwidth parenthesized span",
			text: "プラチナガシャ（8月1日 ～ 8月10日）",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "first-run span with cutoff",
			text: "プラチナガシャ（初回：2018年6月29日 ～ 7月5日 14:59）",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "seasonal name matched case-insensitively against raw text",
			text: "サマーガシャ限定スカウト",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "swimsuit gasha",
			text: "水着スカウト",
			want: model.CategoryLimitedGasha,
		},
		{
			name: "anniversary party gasha rerun",
			text: "アニバーサリーパーティーガシャ(復刻) スカウト",
			want: model.CategoryLimitedGashaRerun,
		},

		// Standing pool.
		{
			name: "initial selection",
			text: "初期選択アイドル",
			want: model.CategoryPermanent,
		},
		{
			name: "local gasha",
			text: "ローカルガシャ",
			want: model.CategoryPermanent,
		},
		{
			name: "plain platinum gasha",
			text: "プラチナガシャ",
			want: model.CategoryPermanent,
		},
		{
			name: "verbose platinum audition gasha normalizes to standing pool",
			text: "プラチナオーディションガシャ",
			want: model.CategoryPermanent,
		},

		// Fallbacks.
		{
			name:    "unrecognized text on low tier is permanent",
			text:    "カリスマチャレンジ达成",
			lowTier: true,
			want:    model.CategoryPermanent,
		},
		{
			name: "unrecognized text on high tier is unknown",
			text: "カリスマチャレンジ达成",
			want: model.CategoryUnknown,
		},
		{
			name: "arbitrary unicode never panics",
			text: "\x00�🂠 ☃ ﬃ",
			want: model.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, tt.lowTier)
			if got != tt.want {
				t.Errorf("Classify(%q, %v) = %q, want %q", tt.text, tt.lowTier, got, tt.want)
			}
			if !got.IsValid() {
				t.Errorf("Classify(%q, %v) returned label outside the taxonomy: %q", tt.text, tt.lowTier, got)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []string{
		"",
		"シンデレラフェス限定(復刻)",
		"イベント「開催」プラチナガシャ",
		"まったく知らないテキスト",
	}
	for _, in := range inputs {
		for _, low := range []bool{false, true} {
			first := Classify(in, low)
			for i := 0; i < 3; i++ {
				if got := Classify(in, low); got != first {
					t.Fatalf("Classify(%q, %v) unstable: %q then %q", in, low, first, got)
				}
			}
		}
	}
}

func TestClassifyRarityOnlyAffectsFallback(t *testing.T) {
	// Rarity never changes the label of matched text, only the
	// disposition of unmatched text.
	matched := []string{
		"シンデレラフェス限定",
		"イベントpt報酬",
		"期間限定ガシャ",
		"プラチナガシャ",
	}
	for _, text := range matched {
		if lo, hi := Classify(text, true), Classify(text, false); lo != hi {
			t.Errorf("rarity changed matched label for %q: %q vs %q", text, lo, hi)
		}
	}

	unmatched := "謎の入手方法"
	if got := Classify(unmatched, true); got != model.CategoryPermanent {
		t.Errorf("low-tier fallback = %q, want %q", got, model.CategoryPermanent)
	}
	if got := Classify(unmatched, false); got != model.CategoryUnknown {
		t.Errorf("high-tier fallback = %q, want %q", got, model.CategoryUnknown)
	}
}
