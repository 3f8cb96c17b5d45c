package logic

import (
	"math"

	"sitesift/internal/domain"
)

// MoveSelection moves the result selection by delta, clamped to
// [-1, n-1]. -1 is the "no selection, focus in input" position.
func MoveSelection(current, delta, n int) int {
	next := current + delta
	if next < -1 {
		next = -1
	}
	if next > n-1 {
		next = n - 1
	}
	return next
}

// EnsureVisible adjusts the list offset so the selected row is inside the
// viewport without moving anything else. A selection of -1 pins the list
// back to the top.
func EnsureVisible(offset, selected, height, n int) int {
	if height <= 0 || n == 0 || selected < 0 {
		return 0
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+height {
		offset = selected - height + 1
	}
	if offset > n-height {
		offset = n - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// ImageItems collects, in render order, every suggestion eligible for the
// lightbox: image category with a non-empty image.
func ImageItems(results []domain.Suggestion, imageLabel string) []domain.Suggestion {
	var items []domain.Suggestion
	for _, s := range results {
		if IsImageCandidate(s, imageLabel) {
			items = append(items, s)
		}
	}
	return items
}

// LocateItem finds the activated suggestion inside the lightbox subset by
// URL+image identity. A stale reference falls back to 0.
func LocateItem(items []domain.Suggestion, target domain.Suggestion) int {
	for i, s := range items {
		if s.URL == target.URL && s.Image == target.Image {
			return i
		}
	}
	return 0
}

// ScorePercent converts a similarity score to a display percentage:
// clamp(score*100, 0, 100) rounded to the nearest integer. The second
// return is false when the score is absent and the label must be omitted.
func ScorePercent(score *float64) (int, bool) {
	if score == nil {
		return 0, false
	}
	pct := *score * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct)), true
}
