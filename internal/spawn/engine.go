package spawn

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/R-Gerard/Roguelike-sub001/internal/cooldown"
	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
	"github.com/R-Gerard/Roguelike-sub001/internal/metrics"
	"github.com/R-Gerard/Roguelike-sub001/internal/rng"
)

// Result describes one spawn attempt. A refused attempt has a nil Entity
// and a Reason.
type Result struct {
	Region    int
	Template  string
	Entity    Entity
	Position  domain.Position
	Placed    bool
	Reason    Reason
	Remaining int64 // turns left when cooling down
}

// Spawned reports whether an entity was created.
func (r Result) Spawned() bool { return r.Entity != nil }

// Engine owns the living set of every region. It must be driven from the
// turn loop only; it does no locking.
type Engine struct {
	factory   Factory
	src       rng.Source
	cooldowns cooldown.Service

	lists  map[int]*List
	ids    map[string]int
	living map[int][]Entity
}

// NewEngine wires an engine. All randomness comes from src.
func NewEngine(factory Factory, src rng.Source, cooldowns cooldown.Service) *Engine {
	return &Engine{
		factory:   factory,
		src:       src,
		cooldowns: cooldowns,
		lists:     make(map[int]*List),
		ids:       make(map[string]int),
		living:    make(map[int][]Entity),
	}
}

// RegisterList adds a list. Each region and each list id may appear once.
func (e *Engine) RegisterList(ctx context.Context, list *List) error {
	if list == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNilList)
	}
	if err := list.validate(); err != nil {
		return err
	}
	if existing, ok := e.lists[list.Region]; ok {
		return fmt.Errorf(ErrFmtDuplicateRegion, domain.ErrDuplicateIdentity, list.Region, existing.ID)
	}
	if _, ok := e.ids[list.ID]; ok {
		return fmt.Errorf(ErrFmtDuplicateList, domain.ErrDuplicateIdentity, list.ID)
	}

	e.lists[list.Region] = list
	e.ids[list.ID] = list.Region
	if list.Cooldown != nil {
		e.cooldowns.SetCooldown(cooldownKey(list.Region), *list.Cooldown)
	}

	logger.FromContext(ctx).Debug(LogMsgListRegistered,
		LogFieldList, list.ID,
		LogFieldRegion, list.Region)
	return nil
}

// Regions lists registered regions in ascending order.
func (e *Engine) Regions() []int {
	out := make([]int, 0, len(e.lists))
	for r := range e.lists {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// List returns the list bound to region.
func (e *Engine) List(region int) (*List, error) {
	list, ok := e.lists[region]
	if !ok {
		return nil, fmt.Errorf(ErrFmtUnknownRegion, domain.ErrUnknownRegion, region)
	}
	return list, nil
}

// Alive is the living count of region.
func (e *Engine) Alive(region int) int { return len(e.living[region]) }

// Living returns the region's entities in spawn order.
func (e *Engine) Living(region int) []Entity {
	return slices.Clone(e.living[region])
}

// Spawn attempts one spawn in region. A full region or an open cooldown
// window is a refused result, not an error. Only successful spawns restart
// the cooldown.
func (e *Engine) Spawn(ctx context.Context, region int) (Result, error) {
	list, err := e.List(region)
	if err != nil {
		return Result{}, err
	}
	log := logger.FromContext(ctx)

	if e.Alive(region) >= list.MaxAlive {
		return e.refuse(ctx, Result{Region: region, Reason: ReasonRegionFull}), nil
	}

	var res Result
	err = e.cooldowns.EnforceCooldown(ctx, cooldownKey(region), func() error {
		var spawnErr error
		res, spawnErr = e.spawnOne(ctx, list)
		return spawnErr
	})
	var cdErr cooldown.ErrOnCooldown
	if errors.As(err, &cdErr) {
		return e.refuse(ctx, Result{Region: region, Reason: ReasonCoolingDown, Remaining: cdErr.Remaining}), nil
	}
	if err != nil {
		return Result{}, err
	}

	log.Info(LogMsgSpawned,
		LogFieldRegion, region,
		LogFieldTemplate, res.Template,
		LogFieldEntityID, res.Entity.ID(),
		LogFieldPosition, res.Position.String(),
		LogFieldAlive, e.Alive(region))
	return res, nil
}

// Populate fills region up to its minimum without consulting the cooldown.
// It returns what was spawned.
func (e *Engine) Populate(ctx context.Context, region int) ([]Result, error) {
	list, err := e.List(region)
	if err != nil {
		return nil, err
	}
	var out []Result
	for e.Alive(region) < list.MinAlive {
		res, err := e.spawnOne(ctx, list)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	logger.FromContext(ctx).Info(LogMsgPopulated,
		LogFieldRegion, region,
		LogFieldSpawned, len(out),
		LogFieldAlive, e.Alive(region))
	return out, nil
}

// Tick gives every region below its cap one spawn attempt, in region order.
func (e *Engine) Tick(ctx context.Context) ([]Result, error) {
	var out []Result
	for _, region := range e.Regions() {
		if e.Alive(region) >= e.lists[region].MaxAlive {
			continue
		}
		res, err := e.Spawn(ctx, region)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Despawn removes an entity from region's living set, freeing a slot. It
// reports false if the entity was not living there.
func (e *Engine) Despawn(ctx context.Context, region int, id string) (bool, error) {
	if _, err := e.List(region); err != nil {
		return false, err
	}
	alive := e.living[region]
	idx := slices.IndexFunc(alive, func(ent Entity) bool { return ent.ID() == id })
	if idx < 0 {
		return false, nil
	}
	e.living[region] = slices.Delete(alive, idx, idx+1)

	label := strconv.Itoa(region)
	metrics.DespawnsTotal.WithLabelValues(label).Inc()
	metrics.LivingEntities.WithLabelValues(label).Set(float64(len(e.living[region])))
	logger.FromContext(ctx).Debug(LogMsgDespawned,
		LogFieldRegion, region,
		LogFieldEntityID, id,
		LogFieldAlive, len(e.living[region]))
	return true, nil
}

// spawnOne draws a template, creates it, places it and records it as
// living in the same call. Random values are consumed in a fixed order:
// the weight roll, then the row offset, then the column offset.
func (e *Engine) spawnOne(ctx context.Context, list *List) (Result, error) {
	entry := list.Table.Draw(e.src)
	ent, err := e.factory.Create(ctx, entry.Template)
	if err != nil {
		return Result{}, fmt.Errorf(ErrFmtCreateFailed, entry.Template, list.Region, err)
	}
	if ent == nil {
		return Result{}, fmt.Errorf(ErrFmtCreateFailed, entry.Template, list.Region, errors.New(ErrMsgNilEntity))
	}

	res := Result{Region: list.Region, Template: entry.Template, Entity: ent}
	if p, ok := ent.(Placeable); ok {
		pos := list.Origin.Offset(
			rng.Between(e.src, -list.Radius, list.Radius),
			rng.Between(e.src, -list.Radius, list.Radius),
		)
		if p.Place(pos) {
			res.Position = pos
			res.Placed = true
		}
	}

	e.living[list.Region] = append(e.living[list.Region], ent)

	label := strconv.Itoa(list.Region)
	metrics.SpawnsTotal.WithLabelValues(label, entry.Template).Inc()
	metrics.LivingEntities.WithLabelValues(label).Set(float64(len(e.living[list.Region])))
	return res, nil
}

func (e *Engine) refuse(ctx context.Context, res Result) Result {
	metrics.SpawnsRefused.WithLabelValues(strconv.Itoa(res.Region), string(res.Reason)).Inc()
	logger.FromContext(ctx).Debug(LogMsgSpawnRefused,
		LogFieldRegion, res.Region,
		LogFieldReason, string(res.Reason),
		LogFieldRemaining, res.Remaining)
	return res
}

func cooldownKey(region int) string {
	return fmt.Sprintf(CooldownKeyFmt, region)
}
