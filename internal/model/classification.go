package model

import "time"

// ClassificationStatus indicates how a card's category was assigned.
type ClassificationStatus string

// Classification status constants.
const (
	StatusClassifiedByRule ClassificationStatus = "CLASSIFIED_BY_RULE"
	StatusUserModified     ClassificationStatus = "USER_MODIFIED"
)

// Classification records the outcome of classifying one card.
type Classification struct {
	ClassifiedAt time.Time
	CardID       string
	Category     CategoryLabel
	Status       ClassificationStatus
	Notes        string
}
