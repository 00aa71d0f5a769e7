package spawn

import (
	"context"
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// List binds a compiled table to one region together with its population
// bounds. Cooldown is in turns; nil uses the cooldown service default.
type List struct {
	ID       string
	Region   int
	Table    *Table
	MinAlive int
	MaxAlive int
	Radius   int
	Origin   domain.Position
	Cooldown *int64
}

// NewList compiles a catalog definition.
func NewList(def catalog.SpawnListDef) (*List, error) {
	entries := make([]Entry, len(def.Entries))
	for i, e := range def.Entries {
		entries[i] = Entry{Weight: e.Weight, Template: e.Template}
	}
	table, err := Compile(entries)
	if err != nil {
		return nil, fmt.Errorf("spawn list %q: %w", def.ID, err)
	}
	l := &List{
		ID:       def.ID,
		Region:   def.Region,
		Table:    table,
		MinAlive: def.MinAlive,
		MaxAlive: def.MaxAlive,
		Radius:   def.Radius,
		Origin:   def.Origin,
		Cooldown: def.Cooldown,
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List) validate() error {
	if l.Table == nil {
		return fmt.Errorf("spawn list %q: %w", l.ID, domain.ErrEmptyTable)
	}
	if l.MaxAlive < 1 || l.MinAlive < 0 || l.MinAlive > l.MaxAlive {
		return fmt.Errorf(ErrFmtBadBounds, domain.ErrInvalidArgument, l.ID)
	}
	if l.Radius < 0 || (l.Cooldown != nil && *l.Cooldown < 0) {
		return fmt.Errorf("%w: spawn list %q has a negative radius or cooldown", domain.ErrInvalidArgument, l.ID)
	}
	return nil
}

// Entity is anything the engine can track. Items satisfy it.
type Entity interface {
	ID() string
}

// Placeable entities are moved near the list origin when spawned.
type Placeable interface {
	Place(p domain.Position) bool
}

// Factory materializes a template.
type Factory interface {
	Create(ctx context.Context, template string) (Entity, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(ctx context.Context, template string) (Entity, error)

func (f FactoryFunc) Create(ctx context.Context, template string) (Entity, error) {
	return f(ctx, template)
}

// CatalogFactory instantiates catalog templates as items.
func CatalogFactory(c *catalog.Catalog) Factory {
	return FactoryFunc(func(_ context.Context, template string) (Entity, error) {
		it, err := c.Instantiate(template)
		if err != nil {
			return nil, err
		}
		return it, nil
	})
}
