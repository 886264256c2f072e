// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"time"
)

// Rarity is one of the four ordered rarity tiers of the catalog.
// The string values are the labels used by the source database site.
type Rarity string

// Rarity tiers, lowest to highest.
const (
	RarityNormal Rarity = "ノーマル"
	RarityRare   Rarity = "レア"
	RaritySRare  Rarity = "Sレア"
	RaritySSRare Rarity = "SSレア"
)

// AllRarities lists the tiers in ascending order.
func AllRarities() []Rarity {
	return []Rarity{RarityNormal, RarityRare, RaritySRare, RaritySSRare}
}

// ParseRarity accepts both the site labels and the common short codes.
func ParseRarity(s string) (Rarity, error) {
	switch s {
	case "N", "n", string(RarityNormal):
		return RarityNormal, nil
	case "R", "r", string(RarityRare):
		return RarityRare, nil
	case "SR", "sr", string(RaritySRare):
		return RaritySRare, nil
	case "SSR", "ssr", string(RaritySSRare):
		return RaritySSRare, nil
	}
	return "", fmt.Errorf("unknown rarity %q", s)
}

// Code returns the short code for the tier (N, R, SR, SSR).
func (r Rarity) Code() string {
	switch r {
	case RarityNormal:
		return "N"
	case RarityRare:
		return "R"
	case RaritySRare:
		return "SR"
	case RaritySSRare:
		return "SSR"
	}
	return string(r)
}

// IsLowTier reports whether the rarity is one of the two lowest tiers.
// Low-tier cards with unrecognized availability text are assumed to be
// part of the permanent pool.
func (r Rarity) IsLowTier() bool {
	return r == RarityNormal || r == RarityRare
}

// Card represents a single catalog entry scraped from the database site.
type Card struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ID           string
	Name         string
	Rarity       Rarity
	Attribute    string // キュート, クール, パッション; empty until scraped
	ImageURL     string
	DetailURL    string
	Availability string // raw 主な入手方法 text; empty until enriched
	Category     CategoryLabel
}

// HasAvailability reports whether the card has been enriched with a
// usable availability description. Fetch-failure sentinels written by
// earlier runs do not count.
func (c *Card) HasAvailability() bool {
	switch c.Availability {
	case "", "情報なし", "取得失敗", "解析エラー":
		return false
	}
	return true
}
