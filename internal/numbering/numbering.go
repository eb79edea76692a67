// Package numbering assigns the human-readable, per-year sequential numbers
// of proposals and contracts, e.g. PROP-2025-00001.
package numbering

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Width is the zero padding of the sequence part
const Width = 5

// Source returns the highest number already stored that starts with prefix,
// or "" when there is none.
type Source interface {
	LatestNumber(ctx context.Context, prefix string) (string, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context, prefix string) (string, error)

// LatestNumber implements Source
func (f SourceFunc) LatestNumber(ctx context.Context, prefix string) (string, error) {
	return f(ctx, prefix)
}

// YearPrefix is "PROP-2025-"
func YearPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%04d-", prefix, year)
}

// Format renders a number. Sequences wider than Width are printed as is.
func Format(prefix string, year, seq int) string {
	return fmt.Sprintf("%s%0*d", YearPrefix(prefix, year), Width, seq)
}

// Sequence extracts the sequence of a number that belongs to prefix and year.
// ok is false for numbers of another prefix or year and for malformed ones.
func Sequence(number, prefix string, year int) (seq int, ok bool) {
	rest, found := strings.CutPrefix(number, YearPrefix(prefix, year))
	if !found || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Next returns the number following the latest one stored for prefix and year
func Next(ctx context.Context, src Source, prefix string, year int) (string, error) {
	latest, err := src.LatestNumber(ctx, YearPrefix(prefix, year))
	if err != nil {
		return "", fmt.Errorf("failed to read latest %s number: %w", prefix, err)
	}
	seq, ok := Sequence(latest, prefix, year)
	if !ok {
		seq = 0
	}
	return Format(prefix, year, seq+1), nil
}
