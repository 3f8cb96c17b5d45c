package logic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"sitesift/internal/domain"
)

// foldTransformer decomposes and strips combining marks, so "Obrázky"
// compares equal to "obrazky".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases and removes diacritics for accent-insensitive compares.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// IsImageCategory reports whether a suggestion's category marks it as an
// image result, matched case- and accent-insensitively against the
// configured image category label.
func IsImageCategory(category, imageLabel string) bool {
	if category == "" {
		return false
	}
	return Fold(category) == Fold(imageLabel)
}

// IsImageCandidate reports whether activating a suggestion should open the
// lightbox: image category plus a non-empty image URL.
func IsImageCandidate(s domain.Suggestion, imageLabel string) bool {
	return s.Image != "" && IsImageCategory(s.Category, imageLabel)
}

// IsDocumentCategory reports whether a category marks an in-place
// previewable document (the crawled site labels these in Czech).
func IsDocumentCategory(category string) bool {
	f := Fold(category)
	return f == "document" || f == "dokumenty"
}

// CategoryGlyph returns the thumbnail-cell fallback marker for a
// suggestion without a usable image, keyed by its category.
func CategoryGlyph(category, imageLabel string) string {
	switch {
	case IsImageCategory(category, imageLabel):
		return "img"
	case IsDocumentCategory(category):
		return "doc"
	case category == "":
		return " · "
	default:
		return "txt"
	}
}
