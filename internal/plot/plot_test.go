package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

func TestValidate_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		pos     domain.Position
		wantErr error
	}{
		{"origin", domain.Position{X: 0, Z: 0}, nil},
		{"corner inclusive", domain.Position{X: 15, Z: -15}, nil},
		{"x beyond edge", domain.Position{X: 15.01, Z: 0}, domain.ErrOutsidePlot},
		{"z beyond edge", domain.Position{X: 0, Z: -16}, domain.ErrOutsidePlot},
		{"nan", domain.Position{X: math.NaN(), Z: 0}, domain.ErrOutsidePlot},
		{"y is ignored", domain.Position{X: 1, Y: 100, Z: 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(nil, tt.pos)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Spacing(t *testing.T) {
	existing := []domain.Plant{
		{ID: "a", Position: domain.Position{X: 0, Y: domain.GroundHeight, Z: 0}},
	}

	err := Validate(existing, domain.Position{X: 1, Z: 1})
	require.ErrorIs(t, err, domain.ErrTooClose)
	assert.Contains(t, err.Error(), "plant a")

	// exactly the minimum distance is allowed
	assert.NoError(t, Validate(existing, domain.Position{X: 2, Z: 0}))

	// height difference does not count toward distance
	assert.ErrorIs(t, Validate(existing, domain.Position{X: 1.5, Y: 50, Z: 0}), domain.ErrTooClose)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(domain.Position{X: 0, Z: 0}, domain.Position{X: 3, Z: 4}), 1e-9)
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tt := range tests {
		got := NormalizeRotation(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "in=%v", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 2*math.Pi)
	}
}
