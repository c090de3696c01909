package advance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExposure(t *testing.T) {
	tests := []struct {
		name      string
		base      int64
		total     int64
		pct       float64
		remaining int64
		atMax     bool
		excluded  bool
	}{
		{name: "no advances", base: 1_000_000, total: 0, pct: 0, remaining: 1_000_000},
		{name: "half", base: 1_000_000, total: 500_000, pct: 50, remaining: 500_000},
		{name: "exactly at ceiling", base: 1_000_000, total: 800_000, pct: 80, remaining: 200_000, atMax: true},
		{name: "over the salary", base: 1_000_000, total: 1_200_000, pct: 120, remaining: -200_000, atMax: true},
		{name: "zero base is excluded", base: 0, total: 300_000, remaining: -300_000, excluded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeExposure("emp", tt.base, tt.total)
			assert.InDelta(t, tt.pct, got.Percentage, 1e-9)
			assert.Equal(t, tt.remaining, got.Remaining)
			assert.Equal(t, tt.atMax, got.AtMaximum)
			assert.Equal(t, tt.excluded, got.Excluded)
		})
	}
}

func TestRankExposure(t *testing.T) {
	ranked := RankExposure([]Exposure{
		ComputeExposure("c", 1000, 500),
		ComputeExposure("b", 1000, 900),
		ComputeExposure("z", 0, 900),
		ComputeExposure("a", 2000, 1000),
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].EmployeeID)
	// a and c tie at 50%.
	assert.Equal(t, "a", ranked[1].EmployeeID)
	assert.Equal(t, "c", ranked[2].EmployeeID)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanMoveTo(StatusValidated))
	assert.True(t, StatusPending.CanMoveTo(StatusRefused))
	assert.True(t, StatusValidated.CanMoveTo(StatusPending))
	assert.True(t, StatusRefused.CanMoveTo(StatusPending))
	assert.False(t, StatusValidated.CanMoveTo(StatusRefused))
	assert.False(t, StatusRefused.CanMoveTo(StatusValidated))
	assert.False(t, StatusPending.CanMoveTo(StatusPending))
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"Validé":     StatusValidated,
		"approved":   StatusValidated,
		"En attente": StatusPending,
		" rejected ": StatusRefused,
	} {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseStatus("cancelled")
	assert.Error(t, err)
}
