package spawn_bench

import (
	"context"
	"testing"

	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
	"github.com/R-Gerard/Roguelike-sub001/internal/cooldown"
	"github.com/R-Gerard/Roguelike-sub001/internal/rng"
	"github.com/R-Gerard/Roguelike-sub001/internal/spawn"
)

// newEngine builds an engine over the sample population with cooldowns
// disabled so every tick spawns.
func newEngine(b *testing.B) *spawn.Engine {
	b.Helper()
	ctx := context.Background()
	c, err := catalog.Load(ctx, catalog.NewLoader(),
		"../../configs/items.yaml", "../../configs/population.json")
	if err != nil {
		b.Fatalf("load sample catalog: %v", err)
	}

	var turn int64
	clock := cooldown.ClockFunc(func() int64 { return turn })
	e := spawn.NewEngine(spawn.CatalogFactory(c), rng.New(7), cooldown.NewService(clock, cooldown.Config{DevMode: true}))
	for _, def := range c.SpawnLists() {
		list, err := spawn.NewList(def)
		if err != nil {
			b.Fatalf("NewList failed: %v", err)
		}
		if err := e.RegisterList(ctx, list); err != nil {
			b.Fatalf("RegisterList failed: %v", err)
		}
	}
	return e
}

// BenchmarkTick_Churn kills the oldest entity of every region and lets the
// engine refill it, the steady state of a busy level.
func BenchmarkTick_Churn(b *testing.B) {
	e := newEngine(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, region := range e.Regions() {
			if living := e.Living(region); len(living) > 0 {
				if _, err := e.Despawn(ctx, region, living[0].ID()); err != nil {
					b.Fatalf("Despawn failed: %v", err)
				}
			}
		}
		if _, err := e.Tick(ctx); err != nil {
			b.Fatalf("Tick failed: %v", err)
		}
	}
}
