package classify

import "regexp"

// The vocabulary tables below are data, not logic: new event or gasha
// names are added here without touching the rule evaluation in
// classifier.go. Unless noted otherwise, entries are matched as
// substrings of the normalized text.

// collabEventNames are proper nouns of known cross-promotion events.
var collabEventNames = []string{
	"ハーモニクス",
	"ももクロ×デレステコラボイベント",
	"星街すいせい×デレステコラボ",
}

// fesKeywords denote the premium festival gasha tier.
var fesKeywords = []string{
	"シンデレラフェス",
	"フェス限定",
	"ノワール限定",
	"ブラン限定",
	"ドミナントガシャ",
}

// eventKeywords denote event-reward provenance. They only apply when
// no gasha marker is present; many limited gashas name the event they
// ran alongside.
var eventKeywords = []string{
	"イベント",
	"報酬",
	"ランキング",
	"ポイント",
	"メダル",
	"live carnival",
	"live groove",
	"live parade",
	"シンデレラキャラバン",
	"ススメ！シンデレラロード",
	"アイドルプロデュース",
	"live infinity",
}

// eventRewardPhrases are literal reward phrasings matched against the
// raw text, bracket characters and casing intact.
var eventRewardPhrases = []string{
	"＜カーニバルメダルチャンス報酬＞",
	"ポイント報酬",
	"ランキング報酬",
	"メダル交換",
	"期間中のlive報酬",
	"達成pt報酬",
	"動員数報酬",
	"map報酬",
	"課題クリア報酬",
	"イベントpt報酬",
	"イベント参加報酬",
}

// eventNameRE matches the generic イベント「...」 shape in the raw text.
var eventNameRE = regexp.MustCompile(`イベント「.*?」`)

// gashaMarkers indicate the card came from some kind of draw.
var gashaMarkers = []string{"ガシャ", "gacha", "スカウト"}

// limitedGashaKeywords are the explicit "this draw was time-boxed" phrasings.
var limitedGashaKeywords = []string{
	"期間限定アイドル",
	"限定ガシャ",
	"期間限定",
}

// datePeriodRE matches a written date range in any of the forms the
// site has used: yyyy/m/d ～ yyyy/m/d, kanji-separated dates, the
// month-day form in ASCII or full-width parentheses, and the
// parenthesized 初回 form with its 14:59 cutoff.
var datePeriodRE = regexp.MustCompile(
	`\d{4}/\d{1,2}/\d{1,2}\s*～\s*\d{4}/\d{1,2}/\d{1,2}` +
		`|\d{4}年\d{1,2}月\d{1,2}日\s*～\s*\d{1,2}月\d{1,2}日` +
		`|\(\s*\d{1,2}月\d{1,2}日\s*～\s*\d{1,2}月\d{1,2}日\s*\)` +
		`|（\s*\d{1,2}月\d{1,2}日\s*～\s*\d{1,2}月\d{1,2}日\s*）` +
		`|（初回：\d{4}年\d{1,2}月\d{1,2}日\s*～\s*\d{1,2}月\d{1,2}日\s*14:59）`)

// seasonalGashaNames are named seasonal or thematic gashas that are
// always time-limited even when the text carries no explicit limited
// keyword or date range. Matched case-insensitively against raw text.
var seasonalGashaNames = []string{
	"アニバーサリーパーティーガシャ",
	"バレンタイン",
	"クリスマス",
	"ハロウィン",
	"温泉ガシャ",
	"振袖ガシャ",
	"ブライダル",
	"サマーガシャ",
	"水着",
	"ナイトタイムガシャ",
	"放課後タイムガシャ",
	"トラベルガシャ",
	"ストーリーガシャ",
	"セッションガシャ",
	"ギフトガシャ",
}

// standingPoolMarkers identify cards from sources that never expire.
var standingPoolMarkers = []string{
	"初期選択",
	"ローカルガシャ",
	"プラチナガシャ",
}

// rerunMarker flags a repeat offering of an earlier gasha.
const rerunMarker = "復刻"
