package scheduler

import (
	"testing"

	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	name string
	out  collector.Outcome
}

func (s stubFetcher) Name() string { return s.name }
func (s stubFetcher) Fetch() collector.Outcome { return s.out }

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := New("not a cron spec", nil)
	assert.Error(t, err)
}

func TestRunOnceRecordsProbeResults(t *testing.T) {
	live := stubFetcher{
		name: "live",
		out:  collector.Outcome{Items: []collector.TrendItem{{Word: "A", Rank: 1}, {Word: "B", Rank: 2}}},
	}
	broken := stubFetcher{
		name: "broken",
		out:  collector.Outcome{Err: &collector.FetchError{Kind: collector.UpstreamStatusError, StatusCode: 503}},
	}

	s, err := New("*/10 * * * *", []collector.TrendFetcher{live, broken})
	require.NoError(t, err)

	results := s.RunOnce()
	assert.Len(t, results, 2)

	r, ok := s.Last("live")
	require.True(t, ok)
	assert.True(t, r.Live)
	assert.Equal(t, 2, r.Items)
	assert.Equal(t, "ok", r.Reason)

	r, ok = s.Last("broken")
	require.True(t, ok)
	assert.False(t, r.Live)
	assert.Equal(t, "upstream_status", r.Reason)

	_, ok = s.Last("missing")
	assert.False(t, ok)
}
