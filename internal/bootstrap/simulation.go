package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/R-Gerard/Roguelike-sub001/internal/actions"
	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
	"github.com/R-Gerard/Roguelike-sub001/internal/config"
	"github.com/R-Gerard/Roguelike-sub001/internal/cooldown"
	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
	"github.com/R-Gerard/Roguelike-sub001/internal/loot"
	"github.com/R-Gerard/Roguelike-sub001/internal/rng"
	"github.com/R-Gerard/Roguelike-sub001/internal/spawn"
)

// TurnClock is the turn counter shared by the cooldown service and the
// turn loop.
type TurnClock struct {
	turn int64
}

func (c *TurnClock) Turn() int64 { return c.turn }

// Advance moves to the next turn and returns it.
func (c *TurnClock) Advance() int64 {
	c.turn++
	return c.turn
}

// Simulation wires a loaded catalog to the spawn engine, loot resolution
// and one scripted adventurer.
type Simulation struct {
	Seed    uint64
	Catalog *catalog.Catalog
	Engine  *spawn.Engine
	Loot    *loot.Resolver
	Actions actions.Service
	Clock   *TurnClock
	Hero    *actions.Actor
}

// Report summarizes a run.
type Report struct {
	Seed      uint64
	Turns     int
	Spawned   int
	Refused   int
	Killed    int
	Collected int
	Discarded int
	Looted    int
	Fired     int
	Reloaded  int
	Consumed  int
	Alive     map[int]int
	Stats     domain.StatBlock
	Carried   int
}

// NewSimulation loads the catalog and builds every component from cfg. A
// zero seed is replaced with one taken from the clock.
func NewSimulation(ctx context.Context, cfg *config.Config) (*Simulation, error) {
	cat, err := catalog.Load(ctx, catalog.NewLoader(), cfg.ItemsPath, cfg.PopulationPath)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rng.New(seed)
	clock := &TurnClock{}

	engine := spawn.NewEngine(spawn.CatalogFactory(cat), src, cooldown.NewService(clock, cfg.Cooldowns()))
	for _, def := range cat.SpawnLists() {
		list, err := spawn.NewList(def)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgBuildSpawnList, def.ID, err)
		}
		if err := engine.RegisterList(ctx, list); err != nil {
			return nil, err
		}
	}

	sim := &Simulation{
		Seed:    seed,
		Catalog: cat,
		Engine:  engine,
		Loot:    loot.NewResolver(cat, src, cfg.LootCacheSize, cfg.LootCacheTTL),
		Actions: actions.NewService(),
		Clock:   clock,
		Hero:    actions.NewActor(HeroID, domain.StatBlock{}.With(domain.StatHealth, HeroHealth), cfg.InventoryLimits()),
	}

	logger.FromContext(ctx).Info(LogMsgSimulationReady,
		LogFieldSeed, seed,
		LogFieldRegions, len(engine.Regions()),
		LogFieldContainers, len(cat.Containers()))
	return sim, nil
}

// Run populates every region, lets the adventurer open every container,
// then plays the given number of turns.
func (s *Simulation) Run(ctx context.Context, turns int) (Report, error) {
	ctx = logger.WithSessionID(ctx, logger.GenerateSessionID())
	rep := Report{Seed: s.Seed, Turns: turns}

	for _, region := range s.Engine.Regions() {
		results, err := s.Engine.Populate(ctx, region)
		rep.Spawned += len(results)
		if err != nil {
			return rep, err
		}
	}

	for _, id := range s.Catalog.Containers() {
		if err := s.openContainer(ctx, id, &rep); err != nil {
			return rep, err
		}
	}
	s.arm(ctx, &rep)

	for range turns {
		turn := s.Clock.Advance()
		tctx := logger.WithTurn(ctx, turn)

		results, err := s.Engine.Tick(tctx)
		for _, res := range results {
			if res.Spawned() {
				rep.Spawned++
			} else {
				rep.Refused++
			}
		}
		if err != nil {
			return rep, err
		}

		if err := s.heroTurn(tctx, turn, &rep); err != nil {
			return rep, err
		}
	}

	rep.Alive = make(map[int]int)
	for _, region := range s.Engine.Regions() {
		rep.Alive[region] = s.Engine.Alive(region)
	}
	rep.Stats = s.Hero.Loadout.Stats()
	rep.Carried = s.Hero.Inventory.Len()

	logger.FromContext(ctx).Info(LogMsgSimulationFinished,
		LogFieldTurns, turns,
		LogFieldSpawned, rep.Spawned,
		LogFieldKilled, rep.Killed,
		LogFieldCollected, rep.Collected)
	return rep, nil
}

func (s *Simulation) openContainer(ctx context.Context, id string, rep *Report) error {
	res, err := s.Loot.Open(ctx, id)
	if err != nil {
		return fmt.Errorf(ErrMsgOpenContainer, id, err)
	}
	rep.Looted += len(res.Items)
	for _, it := range res.Items {
		if _, err := s.Actions.PickUp(ctx, s.Hero, it); err != nil {
			rep.Discarded++
		}
	}
	logger.FromContext(ctx).Debug(LogMsgLootOpened, LogFieldContainer, id, LogFieldItems, len(res.Items))
	return nil
}

// arm equips the first weapon carried when the weapon slot is empty and
// loads it if it takes ammunition.
func (s *Simulation) arm(ctx context.Context, rep *Report) {
	if _, ok := s.Hero.Loadout.Equipped(domain.SlotWeapon); ok {
		return
	}
	idx := s.Hero.Inventory.FindFirst(func(it *item.Item) bool {
		return it.IsEquipableIn(domain.SlotWeapon)
	})
	if idx < 0 {
		return
	}
	if _, err := s.Actions.Equip(ctx, s.Hero, idx, domain.SlotWeapon); err != nil {
		return
	}
	weapon, _ := s.Hero.Loadout.Equipped(domain.SlotWeapon)
	logger.FromContext(ctx).Info(LogMsgHeroArmed, LogFieldKind, weapon.Kind())
	s.reload(ctx, rep)
}

func (s *Simulation) reload(ctx context.Context, rep *Report) {
	weapon, ok := s.Hero.Loadout.Equipped(domain.SlotWeapon)
	if !ok {
		return
	}
	if use, ok := weapon.Useable(); !ok || !use.IsLoadable() {
		return
	}
	res, err := s.Actions.Reload(ctx, s.Hero, actions.InSlot(domain.SlotWeapon), actions.AutoAmmo)
	if err == nil && res.Transferred > 0 {
		rep.Reloaded++
	}
}

// heroTurn spends one turn: drink a potion on schedule, otherwise deal with
// the oldest entity in the lowest populated region. Items are collected,
// anything else is attacked with the equipped weapon.
func (s *Simulation) heroTurn(ctx context.Context, turn int64, rep *Report) error {
	if turn%PotionInterval == 0 && s.drink(ctx, rep) {
		return nil
	}

	region, target, ok := s.nextTarget()
	if !ok {
		return nil
	}
	log := logger.FromContext(ctx)

	if it, isItem := target.(*item.Item); isItem && isLoot(it) {
		if _, err := s.Actions.PickUp(ctx, s.Hero, it); err != nil {
			rep.Discarded++
			log.Debug(LogMsgHeroDiscarded, LogFieldKind, it.Kind(), LogFieldError, err)
		} else {
			rep.Collected++
			log.Debug(LogMsgHeroCollected, LogFieldKind, it.Kind())
		}
		if _, err := s.Engine.Despawn(ctx, region, target.ID()); err != nil {
			return err
		}
		s.arm(ctx, rep)
		return nil
	}

	weapon, armed := s.Hero.Loadout.Equipped(domain.SlotWeapon)
	if !armed {
		return nil
	}
	if use, ok := weapon.Useable(); ok && use.IsLoadable() {
		res, err := s.Actions.Fire(ctx, s.Hero, actions.InSlot(domain.SlotWeapon))
		if err != nil {
			return nil
		}
		if !res.Fired {
			s.reload(ctx, rep)
			return nil
		}
		rep.Fired++
	}

	killed, err := s.Engine.Despawn(ctx, region, target.ID())
	if err != nil {
		return err
	}
	if killed {
		rep.Killed++
		log.Debug(LogMsgHeroKilled, LogFieldRegion, region, LogFieldKind, kindOf(target))
	}
	return nil
}

// drink uses the first disposable item that is not a weapon.
func (s *Simulation) drink(ctx context.Context, rep *Report) bool {
	idx := -1
	for i, it := range s.Hero.Inventory.Items() {
		if use, ok := it.Useable(); ok && use.IsDisposable() && !use.IsLoadable() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	if _, err := s.Actions.Use(ctx, s.Hero, actions.InInventory(idx)); err != nil {
		return false
	}
	rep.Consumed++
	return true
}

func (s *Simulation) nextTarget() (int, spawn.Entity, bool) {
	for _, region := range s.Engine.Regions() {
		if living := s.Engine.Living(region); len(living) > 0 {
			return region, living[0], true
		}
	}
	return 0, nil, false
}

// isLoot reports whether an entity is something to carry rather than fight.
func isLoot(it *item.Item) bool {
	return it.Has(item.FacetStackable) || it.Has(item.FacetEquipable) || it.Has(item.FacetUseable)
}

func kindOf(ent spawn.Entity) string {
	if it, ok := ent.(*item.Item); ok {
		return it.Kind()
	}
	return ent.ID()
}
