// Package plot holds the placement rules for the garden plot.
package plot

import (
	"fmt"
	"math"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// InBounds reports whether pos lies inside the plot, edges included
func InBounds(pos domain.Position) bool {
	return math.Abs(pos.X) <= domain.PlotHalfExtent && math.Abs(pos.Z) <= domain.PlotHalfExtent
}

// Distance is the horizontal distance between two positions; Y is ignored
func Distance(a, b domain.Position) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// Validate checks a new plant position against the plot bounds and the existing plants
func Validate(existing []domain.Plant, pos domain.Position) error {
	if math.IsNaN(pos.X) || math.IsNaN(pos.Z) || !InBounds(pos) {
		return fmt.Errorf("%w: (%.2f, %.2f) exceeds ±%.0f", domain.ErrOutsidePlot, pos.X, pos.Z, domain.PlotHalfExtent)
	}

	for _, p := range existing {
		if d := Distance(p.Position, pos); d < domain.MinPlantDistance {
			return fmt.Errorf("%w: %.2f from plant %s, minimum is %.0f", domain.ErrTooClose, d, p.ID, domain.MinPlantDistance)
		}
	}

	return nil
}

// NormalizeRotation maps any angle in radians into [0, 2π)
func NormalizeRotation(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return r
}
