package service

import (
	"strings"
	"time"

	"lunchbox/backend/internal/model"
)

// timestampLayout matches the millisecond ISO timestamps of the updated_at column.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// supersedes reports whether candidate should replace current as the
// authoritative row of their key. The later updated_at wins; a row with a
// readable timestamp beats one without; otherwise the later row wins.
func supersedes(candidate, current model.OrderRow) bool {
	ct, cok := parseTimestamp(candidate.UpdatedAt)
	rt, rok := parseTimestamp(current.UpdatedAt)
	switch {
	case cok && rok && !ct.Equal(rt):
		return ct.After(rt)
	case cok && !rok:
		return true
	case !cok && rok:
		return false
	}
	return candidate.ID > current.ID
}

// resolveDuplicates picks one authoritative row per key. Rows for which key
// returns "" take no part. Winners come back in first-seen key order, and
// superseded holds the ids of every other row that shared a key.
func resolveDuplicates(rows []model.OrderRow, key func(model.OrderRow) string) (winners []model.OrderRow, superseded []int64) {
	index := make(map[string]int)
	for _, row := range rows {
		k := key(row)
		if k == "" {
			continue
		}
		i, seen := index[k]
		if !seen {
			index[k] = len(winners)
			winners = append(winners, row)
			continue
		}
		if supersedes(row, winners[i]) {
			superseded = append(superseded, winners[i].ID)
			winners[i] = row
		} else {
			superseded = append(superseded, row.ID)
		}
	}
	return winners, superseded
}
