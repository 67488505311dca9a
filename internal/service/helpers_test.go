package service_test

import (
	"testing"
	"time"

	"lunchbox/backend/internal/calendar"

	"github.com/stretchr/testify/require"
)

// fixedNow is 12:00 in Moscow on 2024-01-10.
var fixedNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newNormalizer(t *testing.T) *calendar.Normalizer {
	t.Helper()
	n, err := calendar.NewNormalizer("Europe/Moscow")
	require.NoError(t, err)
	return n
}

func stringPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func listPtr(items ...string) *[]string {
	list := append([]string{}, items...)
	return &list
}
