// Package calendar maps stored date cells onto canonical yyyy-MM-dd days
// in a single reference timezone.
package calendar

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// DateLayout is the canonical day format.
const DateLayout = "2006-01-02"

// Normalizer formats dates in a fixed reference zone. The same instance must
// be used on every path that compares days.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer loads the IANA zone by name.
func NewNormalizer(timezone string) (*Normalizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Normalizer{loc: loc}, nil
}

// Location returns the reference zone.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Normalize converts a stored date cell into a canonical day.
// Native times (and integer unix seconds) are formatted in the reference
// zone; text is trimmed and cut at the first 'T'. Unusable values yield "".
func (n *Normalizer) Normalize(cell any) string {
	switch v := cell.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.In(n.loc).Format(DateLayout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return n.Normalize(*v)
	case int64:
		return time.Unix(v, 0).In(n.loc).Format(DateLayout)
	case string:
		return normalizeText(v)
	case []byte:
		return normalizeText(string(v))
	default:
		return ""
	}
}

// Today returns the canonical day of now in the reference zone.
func (n *Normalizer) Today(now time.Time) string {
	return now.In(n.loc).Format(DateLayout)
}

// IsCanonical reports whether s is already a valid yyyy-MM-dd day.
func IsCanonical(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	day, _, _ := strings.Cut(s, "T")
	return day
}
