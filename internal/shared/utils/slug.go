package utils

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// SlugExistsFunc reports whether a slug is already taken in the target collection.
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// Slugify normalizes text into a lowercase, hyphen-separated, ASCII-safe slug.
func Slugify(input string) string {
	// Decompose accented characters and drop the combining marks
	// ("Nguyễn Nhật Ánh" -> "Nguyen Nhat Anh").
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, input)
	if err != nil {
		ascii = input
	}

	// Whitespace and punctuation runs become a single hyphen; leading
	// and trailing hyphens are trimmed.
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(ascii), "-")
	slug = strings.Trim(slug, "-")

	return slug
}

// GenerateUniqueSlug slugifies text and checks the result against the target
// collection via exists. On collision a random UUID suffix is appended; the
// suffixed form is not re-checked.
func GenerateUniqueSlug(ctx context.Context, exists SlugExistsFunc, text string) (string, error) {
	slug := Slugify(text)

	taken, err := exists(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("failed to check slug existence: %w", err)
	}
	if taken {
		return slug + "-" + uuid.NewString(), nil
	}
	return slug, nil
}
