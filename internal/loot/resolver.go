package loot

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
	"github.com/R-Gerard/Roguelike-sub001/internal/metrics"
	"github.com/R-Gerard/Roguelike-sub001/internal/rng"
	"github.com/R-Gerard/Roguelike-sub001/internal/spawn"
)

// Templates is the part of the catalog the resolver reads.
type Templates interface {
	Container(id string) (catalog.ContainerDef, error)
	InstantiateN(id string, qty int) ([]*item.Item, error)
}

// Result is the materialized content of one opened container.
type Result struct {
	Container string
	Items     []*item.Item
	// Fixed and Random count the items from each source.
	Fixed  int
	Random int
}

// compiledContainer is the runtime form of a container definition.
type compiledContainer struct {
	def   catalog.ContainerDef
	table *spawn.Table // nil when the container has no random slots
}

// Resolver opens containers. Compiled tables are kept in an expiring LRU
// so repeated opens skip recompilation.
type Resolver struct {
	templates Templates
	src       rng.Source
	cache     *expirable.LRU[string, *compiledContainer]
}

// NewResolver creates a resolver drawing from src.
func NewResolver(templates Templates, src rng.Source, cacheSize int, ttl time.Duration) *Resolver {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Resolver{
		templates: templates,
		src:       src,
		cache:     expirable.NewLRU[string, *compiledContainer](cacheSize, nil, ttl),
	}
}

// Open materializes a container. Fixed items always appear, in declared
// order; then each random slot draws once from the table, independently.
func (r *Resolver) Open(ctx context.Context, containerID string) (Result, error) {
	box, err := r.compiled(ctx, containerID)
	if err != nil {
		return Result{}, err
	}

	res := Result{Container: containerID}
	for _, f := range box.def.Fixed {
		qty := f.Quantity
		if qty == 0 {
			qty = 1
		}
		items, err := r.templates.InstantiateN(f.Template, qty)
		if err != nil {
			return Result{}, fmt.Errorf(ErrFmtContainer, containerID, err)
		}
		res.Items = append(res.Items, items...)
		res.Fixed += len(items)
		metrics.LootDropsTotal.WithLabelValues(containerID, f.Template).Add(float64(qty))
	}

	for range box.def.RandomSlots {
		entry := box.table.Draw(r.src)
		items, err := r.templates.InstantiateN(entry.Template, 1)
		if err != nil {
			return Result{}, fmt.Errorf(ErrFmtContainer, containerID, err)
		}
		res.Items = append(res.Items, items...)
		res.Random += len(items)
		metrics.LootDropsTotal.WithLabelValues(containerID, entry.Template).Inc()
	}

	metrics.ContainersOpened.WithLabelValues(containerID).Inc()
	logger.FromContext(ctx).Info(LogMsgContainerOpened,
		LogFieldContainer, containerID,
		LogFieldFixed, res.Fixed,
		LogFieldRandom, res.Random)
	return res, nil
}

// Invalidate drops a compiled container, e.g. after a catalog reload.
func (r *Resolver) Invalidate(containerID string) {
	r.cache.Remove(containerID)
}

// Clear drops every compiled container.
func (r *Resolver) Clear() {
	r.cache.Purge()
}

func (r *Resolver) compiled(ctx context.Context, containerID string) (*compiledContainer, error) {
	if box, ok := r.cache.Get(containerID); ok {
		return box, nil
	}

	def, err := r.templates.Container(containerID)
	if err != nil {
		return nil, err
	}
	box := &compiledContainer{def: def}
	if def.RandomSlots > 0 {
		entries := make([]spawn.Entry, len(def.Table))
		for i, e := range def.Table {
			entries[i] = spawn.Entry{Weight: e.Weight, Template: e.Template}
		}
		box.table, err = spawn.Compile(entries)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtContainer, containerID, err)
		}
	}

	metrics.LootTableCacheMisses.Inc()
	logger.FromContext(ctx).Debug(LogMsgTableCompiled,
		LogFieldContainer, containerID,
		LogFieldEntries, len(def.Table))
	r.cache.Add(containerID, box)
	return box, nil
}
