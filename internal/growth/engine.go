package growth

import (
	"math"
	"time"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// DefinitionLookup resolves plant definitions, satisfied by *catalog.Catalog
type DefinitionLookup interface {
	Plant(t domain.PlantType) (domain.PlantDefinition, bool)
}

// Result describes what a single Advance call did to a plant
type Result struct {
	StagesGained int
	Matured      bool
}

// GardenResult summarises a growth pass over one garden
type GardenResult struct {
	// Matured holds the plants that reached the final stage in this pass
	Matured []domain.Plant
	// StagesGained is the total over every plant
	StagesGained int
}

// Changed reports whether any plant moved to a new stage
func (r GardenResult) Changed() bool {
	return r.StagesGained > 0
}

// Engine provides pure growth logic (no storage dependencies)
type Engine struct {
	defs DefinitionLookup
}

// NewEngine creates a new growth engine
func NewEngine(defs DefinitionLookup) *Engine {
	return &Engine{defs: defs}
}

// Advance grows p up to now. Progress accumulates in fractions of a stage;
// every whole stage crossed is applied at once so a long gap catches up in
// one call. Mature plants are returned unchanged.
func (e *Engine) Advance(p domain.Plant, def domain.PlantDefinition, now time.Time) (domain.Plant, Result) {
	if p.IsMature() {
		return p, Result{}
	}

	stage := def.StageDuration()
	if stage <= 0 {
		return p, Result{}
	}

	// a clock that moved backwards must not rewind the timestamp
	elapsed := now.Sub(p.LastGrowthUpdate)
	if elapsed <= 0 {
		return p, Result{}
	}

	var res Result
	progress := p.GrowthProgress + elapsed.Seconds()/stage.Seconds()
	if whole := math.Floor(progress); whole >= 1 {
		oldStage := p.GrowthStage
		p.GrowthStage = min(oldStage+int(whole), domain.MaxGrowthStage)
		res.StagesGained = p.GrowthStage - oldStage
		progress -= whole
	}

	if p.GrowthStage >= domain.MaxGrowthStage {
		progress = 0
		res.Matured = res.StagesGained > 0
	}

	p.GrowthProgress = progress
	p.LastGrowthUpdate = now
	return p, res
}

// AdvanceGarden grows every plant in g in place.
// Plants whose type is missing from the catalog are left untouched.
func (e *Engine) AdvanceGarden(g *domain.Garden, now time.Time) GardenResult {
	var out GardenResult
	for i, p := range g.Plants {
		def, ok := e.defs.Plant(p.Type)
		if !ok {
			continue
		}
		next, res := e.Advance(p, def, now)
		g.Plants[i] = next
		out.StagesGained += res.StagesGained
		if res.Matured {
			out.Matured = append(out.Matured, next)
		}
	}
	return out
}
