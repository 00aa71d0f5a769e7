package item

import (
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// LoadState is the ammunition state of a loadable item.
type LoadState uint8

const (
	LoadNotLoadable LoadState = iota
	LoadEmpty
	LoadPartial
	LoadFull
)

func (s LoadState) String() string {
	switch s {
	case LoadEmpty:
		return "EMPTY"
	case LoadPartial:
		return "PARTIAL"
	case LoadFull:
		return "FULL"
	default:
		return "NOT_LOADABLE"
	}
}

// UseSpec configures the use facet. Capacity fields are ignored unless
// Loadable is set.
type UseSpec struct {
	Disposable  bool
	Loadable    bool
	Current     int
	Maximum     int
	Ammunition  string // kind consumed on reload
	ReloadSpeed int    // 0 means DefaultReloadSpeed
	Modifiers   domain.StatBlock
	Effect      string // description returned on a successful use
}

// UseFacet is the consume/fire/reload state of an item.
type UseFacet struct {
	disposable  bool
	loadable    bool
	current     int
	maximum     int
	ammunition  string
	reloadSpeed int
	modifiers   domain.StatBlock
	effect      string
}

// WithUse attaches a use facet.
func WithUse(spec UseSpec) Option {
	return func(i *Item) error {
		f := &UseFacet{
			disposable: spec.Disposable,
			loadable:   spec.Loadable,
			current:    Unbounded,
			maximum:    Unbounded,
			modifiers:  spec.Modifiers,
			effect:     spec.Effect,
		}
		if spec.Loadable {
			if spec.Maximum < 1 {
				return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgBadMaximum)
			}
			if spec.Current < 0 || spec.Current > spec.Maximum {
				return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgBadCapacity)
			}
			if spec.Ammunition == "" {
				return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgMissingAmmo)
			}
			if spec.ReloadSpeed < 0 {
				return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgBadReloadSpeed)
			}
			f.current = spec.Current
			f.maximum = spec.Maximum
			f.ammunition = spec.Ammunition
		}
		f.reloadSpeed = spec.ReloadSpeed
		if f.reloadSpeed == 0 {
			f.reloadSpeed = DefaultReloadSpeed
		}
		i.use = f
		return nil
	}
}

func (f *UseFacet) IsDisposable() bool { return f.disposable }
func (f *UseFacet) IsLoadable() bool   { return f.loadable }

// CurrentCapacity is Unbounded (-1) for items that are not loadable.
func (f *UseFacet) CurrentCapacity() int { return f.current }

// MaximumCapacity is Unbounded (-1) for items that are not loadable.
func (f *UseFacet) MaximumCapacity() int { return f.maximum }

// AmmunitionType is the kind consumed on reload, empty if not loadable.
func (f *UseFacet) AmmunitionType() string { return f.ammunition }

func (f *UseFacet) ReloadSpeed() int { return f.reloadSpeed }

// Modifiers returns the block bestowed on a successful use.
func (f *UseFacet) Modifiers() domain.StatBlock { return f.modifiers }

// State classifies the magazine.
func (f *UseFacet) State() LoadState {
	switch {
	case !f.loadable:
		return LoadNotLoadable
	case f.current == 0:
		return LoadEmpty
	case f.current >= f.maximum:
		return LoadFull
	default:
		return LoadPartial
	}
}

// SetCurrentCapacity replaces the loaded rounds. Values outside
// [0, MaximumCapacity] and any call on a non-loadable item are rejected.
func (f *UseFacet) SetCurrentCapacity(q int) error {
	if !f.loadable {
		return domain.ErrNotLoadable
	}
	if q < 0 || q > f.maximum {
		return fmt.Errorf("%w: %s (%d not in [0, %d])", domain.ErrInvalidArgument, ErrMsgBadCapacity, q, f.maximum)
	}
	f.current = q
	return nil
}

// UseResult describes the outcome of a use or fire.
type UseResult struct {
	// Fired is false for the no-effect outcome of an empty magazine.
	Fired     bool
	Effect    string
	Modifiers domain.StatBlock
	// Dispose tells the owner to remove the item (or one unit of it).
	Dispose bool
	// Rounds left after the call, Unbounded if not loadable.
	Rounds int
}

// Use applies the item. Loadable items spend one round; with none loaded
// the result is a no-effect outcome and nothing changes.
func (i *Item) Use() (UseResult, error) {
	if i.use == nil {
		return UseResult{}, fmt.Errorf("%w: %s", domain.ErrNotUseable, i.kind)
	}
	f := i.use
	if f.loadable {
		return i.fire(), nil
	}

	effect := f.effect
	if effect == "" {
		effect = fmt.Sprintf(EffectFmtUse, i.name)
	}
	return UseResult{
		Fired:     true,
		Effect:    effect,
		Modifiers: f.modifiers,
		Dispose:   f.disposable,
		Rounds:    Unbounded,
	}, nil
}

// Fire is Use restricted to loadable items.
func (i *Item) Fire() (UseResult, error) {
	if i.use == nil {
		return UseResult{}, fmt.Errorf("%w: %s", domain.ErrNotUseable, i.kind)
	}
	if !i.use.loadable {
		return UseResult{}, fmt.Errorf("%w: %s", domain.ErrNotLoadable, i.kind)
	}
	return i.fire(), nil
}

func (i *Item) fire() UseResult {
	f := i.use
	if f.current == 0 {
		return UseResult{
			Effect: fmt.Sprintf(EffectFmtEmpty, i.name),
			Rounds: 0,
		}
	}
	f.current--

	effect := f.effect
	if effect == "" {
		effect = fmt.Sprintf(EffectFmtFire, i.name)
	}
	return UseResult{
		Fired:     true,
		Effect:    effect,
		Modifiers: f.modifiers,
		Dispose:   f.disposable,
		Rounds:    f.current,
	}
}

// AmmoSupply is an indexable source of inventory entries, normally the
// acting user's inventory.
type AmmoSupply interface {
	At(index int) (*Item, error)
}

// ReloadResult reports rounds moved so the owner can drop an emptied stack.
type ReloadResult struct {
	Transferred   int
	Rounds        int // loaded rounds after the reload
	AmmoRemaining int // 0 means the ammo entry must be removed
}

// Reload moves min(reload speed, room in magazine, ammo quantity) rounds
// from the supply entry at index. A zero transfer (full magazine, empty
// stack) is not an error.
func (i *Item) Reload(supply AmmoSupply, index int) (ReloadResult, error) {
	if i.use == nil || !i.use.loadable {
		return ReloadResult{}, fmt.Errorf("%w: %s", domain.ErrNotLoadable, i.kind)
	}
	if supply == nil {
		return ReloadResult{}, fmt.Errorf("%w: nil ammo supply", domain.ErrInvalidArgument)
	}
	ammo, err := supply.At(index)
	if err != nil {
		return ReloadResult{}, err
	}
	return i.ReloadFrom(ammo)
}

// ReloadFrom reloads from a specific ammunition entry.
func (i *Item) ReloadFrom(ammo *Item) (ReloadResult, error) {
	if i.use == nil || !i.use.loadable {
		return ReloadResult{}, fmt.Errorf("%w: %s", domain.ErrNotLoadable, i.kind)
	}
	f := i.use
	if ammo == nil || ammo == i || ammo.stack == nil || ammo.kind != f.ammunition {
		got := "<none>"
		if ammo != nil {
			got = ammo.kind
		}
		return ReloadResult{}, fmt.Errorf("%w: %s wants %s, got %s", domain.ErrAmmoMismatch, i.kind, f.ammunition, got)
	}

	n := min(f.reloadSpeed, f.maximum-f.current, ammo.stack.quantity)
	moved := ammo.stack.take(n)
	f.current += moved

	return ReloadResult{
		Transferred:   moved,
		Rounds:        f.current,
		AmmoRemaining: ammo.stack.quantity,
	}, nil
}
