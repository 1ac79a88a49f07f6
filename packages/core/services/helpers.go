package services

import (
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

// Clock returns the current time. Tests replace it to pin dates.
type Clock func() time.Time

func systemClock() time.Time { return time.Now() }

// lookupError reports a missing record as "<what> not found" and classifies anything else.
func lookupError(log *slog.Logger, op, what string, err error, attrs ...any) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(op, "%s not found", what)
	}
	return storeError(log, op, err, attrs...)
}

// uniqueStrings trims, drops empty values and duplicates, and keeps the first-seen order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func uniqueIDs(values []uint) []uint {
	seen := make(map[uint]struct{}, len(values))
	out := make([]uint, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok || v == 0 {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
