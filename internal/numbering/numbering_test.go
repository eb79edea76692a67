package numbering

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySource orders numbers the way the repository query does:
// longest first, then lexicographically descending.
type memorySource struct {
	mu      sync.Mutex
	numbers []string
}

func (m *memorySource) LatestNumber(ctx context.Context, prefix string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matching []string
	for _, n := range m.numbers {
		if strings.HasPrefix(n, prefix) {
			matching = append(matching, n)
		}
	}
	if len(matching) == 0 {
		return "", nil
	}
	sort.Slice(matching, func(i, j int) bool {
		if len(matching[i]) != len(matching[j]) {
			return len(matching[i]) > len(matching[j])
		}
		return matching[i] > matching[j]
	})
	return matching[0], nil
}

// insert fails like a unique index when the number exists
func (m *memorySource) insert(n string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.numbers {
		if existing == n {
			return false
		}
	}
	m.numbers = append(m.numbers, n)
	return true
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "PROP-2025-00001", Format("PROP", 2025, 1))
	assert.Equal(t, "CONT-2025-00042", Format("CONT", 2025, 42))
	assert.Equal(t, "CONT-2025-123456", Format("CONT", 2025, 123456))
}

func TestSequence(t *testing.T) {
	tests := []struct {
		number string
		seq    int
		ok     bool
	}{
		{"PROP-2025-00007", 7, true},
		{"PROP-2025-123456", 123456, true},
		{"PROP-2024-00007", 0, false},
		{"CONT-2025-00007", 0, false},
		{"PROP-2025-", 0, false},
		{"PROP-2025-00A1", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			seq, ok := Sequence(tt.number, "PROP", 2025)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.seq, seq)
		})
	}
}

func TestNext_StartsAtOnePerYear(t *testing.T) {
	src := &memorySource{numbers: []string{"PROP-2024-00031", "CONT-2025-00003"}}

	n, err := Next(context.Background(), src, "PROP", 2025)
	require.NoError(t, err)
	assert.Equal(t, "PROP-2025-00001", n)

	n, err = Next(context.Background(), src, "PROP", 2024)
	require.NoError(t, err)
	assert.Equal(t, "PROP-2024-00032", n)
}

func TestNext_OrdersWideSequencesAfterPadded(t *testing.T) {
	src := &memorySource{numbers: []string{"PROP-2025-99999", "PROP-2025-100000"}}
	n, err := Next(context.Background(), src, "PROP", 2025)
	require.NoError(t, err)
	assert.Equal(t, "PROP-2025-100001", n)
}

func TestNext_SourceError(t *testing.T) {
	src := SourceFunc(func(ctx context.Context, prefix string) (string, error) {
		return "", errors.New("db down")
	})
	_, err := Next(context.Background(), src, "CONT", 2025)
	assert.Error(t, err)
}

func TestNext_ConcurrentCallersWithRetryGetDistinctNumbers(t *testing.T) {
	src := &memorySource{}
	const callers = 20

	var wg sync.WaitGroup
	results := make(chan string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				n, err := Next(context.Background(), src, "PROP", 2025)
				if err != nil {
					return
				}
				if src.insert(n) {
					results <- n
					return
				}
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := map[string]bool{}
	for n := range results {
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, callers)
	for i := 1; i <= callers; i++ {
		assert.True(t, seen[Format("PROP", 2025, i)])
	}
}
