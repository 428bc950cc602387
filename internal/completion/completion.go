// Package completion derives workflow-gating values from the card set: which
// cards are complete, how far along each moment is, and whether the collection
// may be finalized. Everything here is pure.
package completion

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// Status summarizes completion over a set of cards.
type Status struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

// IsComplete reports whether a card counts toward checkout eligibility:
// a non-blank title, a non-blank message, and a message within the length
// limit.
func IsComplete(c types.Card) bool {
	if strings.TrimSpace(c.Title) == "" {
		return false
	}
	if strings.TrimSpace(c.MessageText) == "" {
		return false
	}
	return utf8.RuneCountInString(c.MessageText) <= types.MaxMessageLength
}

// Overall computes completion across all cards.
func Overall(cards []types.Card) Status {
	completed := 0
	for _, c := range cards {
		if IsComplete(c) {
			completed++
		}
	}
	return status(len(cards), completed)
}

// ForMoment computes completion for the cards whose order falls inside the
// given moment. Cards outside any moment are ignored.
func ForMoment(cards []types.Card, momentIndex int) Status {
	m, ok := MomentAt(momentIndex)
	if !ok {
		return Status{}
	}
	total, completed := 0, 0
	for _, c := range cards {
		if c.Order < m.FirstOrder || c.Order > m.LastOrder {
			continue
		}
		total++
		if IsComplete(c) {
			completed++
		}
	}
	return status(total, completed)
}

// CanFinalize is the single checkout gate: the collection must be present and
// every one of the twelve cards complete. Callers may layer narrower per-step
// checks on top; this is the only gate the engine itself enforces.
func CanFinalize(collection *types.Collection, cards []types.Card) bool {
	if collection == nil {
		return false
	}
	if len(cards) != types.CardsPerCollection {
		return false
	}
	for _, c := range cards {
		if !IsComplete(c) {
			return false
		}
	}
	return true
}

func status(total, completed int) Status {
	s := Status{Total: total, Completed: completed}
	if total > 0 {
		s.Percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return s
}
