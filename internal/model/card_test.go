package model

import "testing"

func TestParseRarity(t *testing.T) {
	tests := []struct {
		in      string
		want    Rarity
		wantErr bool
	}{
		{in: "SSR", want: RaritySSRare},
		{in: "ssr", want: RaritySSRare},
		{in: "SSレア", want: RaritySSRare},
		{in: "SR", want: RaritySRare},
		{in: "Sレア", want: RaritySRare},
		{in: "R", want: RarityRare},
		{in: "レア", want: RarityRare},
		{in: "N", want: RarityNormal},
		{in: "ノーマル", want: RarityNormal},
		{in: "UR", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseRarity(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRarity(%q) error = nil, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRarity(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRarity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRarityIsLowTier(t *testing.T) {
	lowTiers := map[Rarity]bool{
		RarityNormal: true,
		RarityRare:   true,
		RaritySRare:  false,
		RaritySSRare: false,
	}
	for rarity, want := range lowTiers {
		if got := rarity.IsLowTier(); got != want {
			t.Errorf("%s.IsLowTier() = %v, want %v", rarity, got, want)
		}
	}
}

func TestRarityCode(t *testing.T) {
	for _, rarity := range AllRarities() {
		code := rarity.Code()
		parsed, err := ParseRarity(code)
		if err != nil {
			t.Errorf("ParseRarity(%s.Code()) error = %v", rarity, err)
			continue
		}
		if parsed != rarity {
			t.Errorf("ParseRarity(%q) = %q, want %q", code, parsed, rarity)
		}
	}
}

func TestCardHasAvailability(t *testing.T) {
	tests := []struct {
		availability string
		want         bool
	}{
		{"", false},
		{"情報なし", false},
		{"取得失敗", false},
		{"解析エラー", false},
		{"シンデレラフェス限定", true},
	}
	for _, tt := range tests {
		card := Card{Availability: tt.availability}
		if got := card.HasAvailability(); got != tt.want {
			t.Errorf("HasAvailability() with %q = %v, want %v", tt.availability, got, tt.want)
		}
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, label := range AllCategories() {
		if !label.IsValid() {
			t.Errorf("%q should be valid", label)
		}
	}
	if CategoryLabel("なにそれ").IsValid() {
		t.Error("arbitrary label should not be valid")
	}
	if CategoryLabel("").IsValid() {
		t.Error("empty label should not be valid")
	}
}
