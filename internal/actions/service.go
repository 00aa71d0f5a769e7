package actions

import (
	"context"
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/inventory"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
	"github.com/R-Gerard/Roguelike-sub001/internal/metrics"
)

// Service is what the turn loop calls to act on an actor's items. Every
// call either completes or leaves the actor as it was.
type Service interface {
	PickUp(ctx context.Context, actor *Actor, it *item.Item) (inventory.AddResult, error)
	Drop(ctx context.Context, actor *Actor, index, qty int) (*item.Item, error)

	Use(ctx context.Context, actor *Actor, t Target) (item.UseResult, error)
	Fire(ctx context.Context, actor *Actor, t Target) (item.UseResult, error)
	// Reload loads the target from the stack at ammoIndex, or from the first
	// compatible stack when ammoIndex is AutoAmmo.
	Reload(ctx context.Context, actor *Actor, t Target, ammoIndex int) (item.ReloadResult, error)

	Equip(ctx context.Context, actor *Actor, index int, slot domain.Slot) (*item.Item, error)
	Unequip(ctx context.Context, actor *Actor, slot domain.Slot) (*item.Item, error)
}

type service struct{}

// NewService creates the actions service.
func NewService() Service {
	return &service{}
}

func (s *service) PickUp(ctx context.Context, actor *Actor, it *item.Item) (inventory.AddResult, error) {
	if err := checkActor(actor); err != nil {
		return inventory.AddResult{}, s.fail(ctx, actor, ActionPickUp, err)
	}
	if it == nil {
		return inventory.AddResult{}, s.fail(ctx, actor, ActionPickUp,
			fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNoTarget))
	}
	kind, qty := it.Kind(), it.Quantity()

	res, err := actor.Inventory.Add(it)
	if err != nil {
		return res, s.fail(ctx, actor, ActionPickUp, err)
	}
	if res.Merged > 0 {
		metrics.MergesTotal.WithLabelValues(kind).Inc()
	}

	logger.FromContext(ctx).Debug(LogMsgPickedUp,
		LogFieldActor, actor.ID,
		LogFieldKind, kind,
		LogFieldQuantity, qty,
		LogFieldMerged, res.Merged)
	return res, nil
}

// Drop takes qty units from the entry at index and places them where the
// actor stands.
func (s *service) Drop(ctx context.Context, actor *Actor, index, qty int) (*item.Item, error) {
	if err := checkActor(actor); err != nil {
		return nil, s.fail(ctx, actor, ActionDrop, err)
	}
	it, err := actor.Inventory.Take(index, qty)
	if err != nil {
		return nil, s.fail(ctx, actor, ActionDrop, err)
	}
	it.Place(actor.Position)

	logger.FromContext(ctx).Debug(LogMsgDropped,
		LogFieldActor, actor.ID,
		LogFieldKind, it.Kind(),
		LogFieldQuantity, it.Quantity())
	return it, nil
}

func (s *service) Use(ctx context.Context, actor *Actor, t Target) (item.UseResult, error) {
	return s.activate(ctx, actor, t, ActionUse, (*item.Item).Use)
}

func (s *service) Fire(ctx context.Context, actor *Actor, t Target) (item.UseResult, error) {
	return s.activate(ctx, actor, t, ActionFire, (*item.Item).Fire)
}

// activate runs a use or fire on the target and settles it. A round spent
// by act is put back if settling fails.
func (s *service) activate(ctx context.Context, actor *Actor, t Target, action string,
	act func(*item.Item) (item.UseResult, error)) (item.UseResult, error) {
	it, err := s.target(actor, t)
	if err != nil {
		return item.UseResult{}, s.fail(ctx, actor, action, err)
	}
	restore := loadedRounds(it)

	res, err := act(it)
	if err != nil {
		return item.UseResult{}, s.fail(ctx, actor, action, err)
	}
	if err := s.settle(ctx, actor, t, it, res); err != nil {
		restore()
		return item.UseResult{}, s.fail(ctx, actor, action, err)
	}
	return res, nil
}

// loadedRounds returns a func that puts back the rounds currently loaded.
func loadedRounds(it *item.Item) func() {
	use, ok := it.Useable()
	if !ok || !use.IsLoadable() {
		return func() {}
	}
	rounds := use.CurrentCapacity()
	return func() { _ = use.SetCurrentCapacity(rounds) }
}

// settle applies what a use leaves behind: modifiers go onto the actor's
// base stats and a disposed item loses one unit.
func (s *service) settle(ctx context.Context, actor *Actor, t Target, it *item.Item, res item.UseResult) error {
	log := logger.FromContext(ctx)
	use, _ := it.Useable()

	if !res.Fired {
		log.Debug(LogMsgDryFire, LogFieldActor, actor.ID, LogFieldKind, it.Kind())
		return nil
	}

	if res.Dispose {
		if err := consumeOne(actor, t, it); err != nil {
			return err
		}
		metrics.ItemsConsumed.WithLabelValues(it.Kind()).Inc()
	}
	if !res.Modifiers.IsZero() {
		actor.Loadout.AdjustBase(res.Modifiers)
	}

	if use.IsLoadable() {
		metrics.RoundsFired.WithLabelValues(it.Kind()).Inc()
		log.Debug(LogMsgFired,
			LogFieldActor, actor.ID,
			LogFieldKind, it.Kind(),
			LogFieldRounds, res.Rounds)
		return nil
	}
	log.Debug(LogMsgUsed,
		LogFieldActor, actor.ID,
		LogFieldKind, it.Kind(),
		LogFieldItem, res.Effect)
	return nil
}

// consumeOne takes a single unit off a stack, or removes the item when it
// is the last one.
func consumeOne(actor *Actor, t Target, it *item.Item) error {
	if stack, ok := it.Stackable(); ok && stack.Quantity() > 1 {
		return stack.SetQuantity(stack.Quantity() - 1)
	}
	return actor.discard(t, it)
}

func (s *service) Reload(ctx context.Context, actor *Actor, t Target, ammoIndex int) (item.ReloadResult, error) {
	weapon, err := s.target(actor, t)
	if err != nil {
		return item.ReloadResult{}, s.fail(ctx, actor, ActionReload, err)
	}
	use, ok := weapon.Useable()
	if !ok || !use.IsLoadable() {
		return item.ReloadResult{}, s.fail(ctx, actor, ActionReload,
			fmt.Errorf("%w: %s", domain.ErrNotLoadable, weapon.Kind()))
	}

	log := logger.FromContext(ctx)
	if ammoIndex == AutoAmmo {
		ammoIndex = actor.Inventory.FindFirst(func(it *item.Item) bool {
			return it != weapon && it.Kind() == use.AmmunitionType() &&
				it.Has(item.FacetStackable) && it.Quantity() > 0
		})
		if ammoIndex < 0 {
			log.Debug(LogMsgNoAmmo, LogFieldActor, actor.ID, LogFieldKind, weapon.Kind())
			return item.ReloadResult{Rounds: use.CurrentCapacity()}, nil
		}
	}

	res, err := weapon.Reload(actor.Inventory, ammoIndex)
	if err != nil {
		return item.ReloadResult{}, s.fail(ctx, actor, ActionReload, err)
	}
	if res.AmmoRemaining == 0 {
		if _, err := actor.Inventory.Remove(ammoIndex); err != nil {
			return res, s.fail(ctx, actor, ActionReload, err)
		}
		log.Debug(LogMsgConsumedEntry, LogFieldActor, actor.ID, LogFieldKind, use.AmmunitionType())
	}

	metrics.RoundsReloaded.WithLabelValues(weapon.Kind()).Add(float64(res.Transferred))
	log.Debug(LogMsgReloaded,
		LogFieldActor, actor.ID,
		LogFieldKind, weapon.Kind(),
		LogFieldMoved, res.Transferred,
		LogFieldRounds, res.Rounds)
	return res, nil
}

// Equip moves the entry at index into slot. Whatever was worn there takes
// the entry's place in the inventory.
func (s *service) Equip(ctx context.Context, actor *Actor, index int, slot domain.Slot) (*item.Item, error) {
	if err := checkActor(actor); err != nil {
		return nil, s.fail(ctx, actor, ActionEquip, err)
	}
	it, err := actor.Inventory.At(index)
	if err != nil {
		return nil, s.fail(ctx, actor, ActionEquip, err)
	}

	prev, err := actor.Loadout.Equip(slot, it)
	if err != nil {
		return nil, s.fail(ctx, actor, ActionEquip, err)
	}
	if prev == nil {
		if _, err := actor.Inventory.Remove(index); err != nil {
			return nil, s.fail(ctx, actor, ActionEquip, err)
		}
	} else if _, err := actor.Inventory.Replace(index, prev); err != nil {
		if _, rbErr := actor.Loadout.Equip(slot, prev); rbErr != nil {
			err = fmt.Errorf(ErrFmtRollback, err, rbErr)
		}
		return nil, s.fail(ctx, actor, ActionEquip, err)
	}

	metrics.EquipsTotal.WithLabelValues(slot.String(), metrics.OperationEquip).Inc()
	args := []any{LogFieldActor, actor.ID, LogFieldKind, it.Kind(), LogFieldSlot, slot.String()}
	if prev != nil {
		args = append(args, LogFieldPrevious, prev.Kind())
	}
	logger.FromContext(ctx).Debug(LogMsgEquipped, args...)
	return prev, nil
}

// Unequip moves the item in slot back into the inventory. If the
// inventory cannot take it the item stays worn.
func (s *service) Unequip(ctx context.Context, actor *Actor, slot domain.Slot) (*item.Item, error) {
	if err := checkActor(actor); err != nil {
		return nil, s.fail(ctx, actor, ActionUnequip, err)
	}
	it, err := actor.Loadout.Unequip(slot)
	if err != nil {
		return nil, s.fail(ctx, actor, ActionUnequip, err)
	}
	if _, err := actor.Inventory.Add(it); err != nil {
		if _, rbErr := actor.Loadout.Equip(slot, it); rbErr != nil {
			err = fmt.Errorf(ErrFmtRollback, err, rbErr)
		}
		return nil, s.fail(ctx, actor, ActionUnequip, err)
	}

	metrics.EquipsTotal.WithLabelValues(slot.String(), metrics.OperationUnequip).Inc()
	logger.FromContext(ctx).Debug(LogMsgUnequipped,
		LogFieldActor, actor.ID,
		LogFieldKind, it.Kind(),
		LogFieldSlot, slot.String())
	return it, nil
}

func (s *service) target(actor *Actor, t Target) (*item.Item, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	return actor.resolve(t)
}

func (s *service) fail(ctx context.Context, actor *Actor, action string, err error) error {
	id := ""
	if actor != nil {
		id = actor.ID
	}
	metrics.ActionErrors.WithLabelValues(action).Inc()
	logger.FromContext(ctx).Warn(LogMsgActionFailed,
		LogFieldActor, id,
		LogFieldAction, action,
		LogFieldError, err)
	return err
}

func checkActor(actor *Actor) error {
	if actor == nil || actor.Inventory == nil || actor.Loadout == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNilActor)
	}
	return nil
}
