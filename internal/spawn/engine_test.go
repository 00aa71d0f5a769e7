package spawn

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
	"github.com/R-Gerard/Roguelike-sub001/internal/cooldown"
	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
	"github.com/R-Gerard/Roguelike-sub001/internal/rng"
)

func goblinList(t *testing.T, region, min, max int, cd int64) *List {
	t.Helper()
	list, err := NewList(catalog.SpawnListDef{
		ID:       "goblins",
		Region:   region,
		Entries:  []catalog.EntryDef{{Weight: 100, Template: "goblin"}},
		MinAlive: min,
		MaxAlive: max,
		Radius:   0,
		Origin:   domain.Position{Row: 3, Col: 4},
		Cooldown: &cd,
	})
	require.NoError(t, err)
	return list
}

func turns(n int64) *int64 { return &n }

func newTestEngine(t *testing.T, factory Factory, src rng.Source) (*Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	return NewEngine(factory, src, cooldown.NewService(clock, cooldown.Config{})), clock
}

func TestNewList_Validation(t *testing.T) {
	base := catalog.SpawnListDef{ID: "x", MaxAlive: 2, Entries: []catalog.EntryDef{{Weight: 1, Template: "rat"}}}

	tests := []struct {
		name    string
		mutate  func(d *catalog.SpawnListDef)
		wantErr error
	}{
		{"no entries", func(d *catalog.SpawnListDef) { d.Entries = nil }, domain.ErrEmptyTable},
		{"zero cap", func(d *catalog.SpawnListDef) { d.MaxAlive = 0 }, domain.ErrInvalidArgument},
		{"min above max", func(d *catalog.SpawnListDef) { d.MinAlive = 3 }, domain.ErrInvalidArgument},
		{"negative radius", func(d *catalog.SpawnListDef) { d.Radius = -1 }, domain.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := base
			tt.mutate(&def)
			_, err := NewList(def)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterList_Duplicates(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, &counterFactory{}, rng.New(1))
	require.NoError(t, e.RegisterList(ctx, goblinList(t, 1, 0, 2, 0)))

	err := e.RegisterList(ctx, goblinList(t, 1, 0, 2, 0))
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	err = e.RegisterList(ctx, goblinList(t, 2, 0, 2, 0))
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity, "list id reused")

	err = e.RegisterList(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Equal(t, []int{1}, e.Regions())
}

func TestSpawn_GoblinList(t *testing.T) {
	ctx := context.Background()
	factory := new(MockFactory)
	src := new(MockSource)

	goblin := &fakeEntity{id: "goblin-1"}
	factory.On("Create", mock.Anything, "goblin").Return(goblin, nil).Once()
	src.On("IntN", 100).Return(73).Once()

	e, _ := newTestEngine(t, factory, src)
	require.NoError(t, e.RegisterList(ctx, goblinList(t, 0, 0, 3, 0)))

	res, err := e.Spawn(ctx, 0)
	require.NoError(t, err)
	assert.True(t, res.Spawned())
	assert.Equal(t, "goblin", res.Template)
	assert.Same(t, goblin, res.Entity)
	assert.True(t, res.Placed)
	assert.Equal(t, domain.Position{Row: 3, Col: 4}, *goblin.pos, "radius 0 places at origin")
	assert.Equal(t, 1, e.Alive(0))

	factory.AssertExpectations(t)
	src.AssertExpectations(t)
}

func TestSpawn_UnknownRegion(t *testing.T) {
	e, _ := newTestEngine(t, &counterFactory{}, rng.New(1))
	_, err := e.Spawn(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)

	_, err = e.Populate(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)

	_, err = e.Despawn(context.Background(), 5, "x")
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)
}

func TestSpawn_NeverExceedsCap(t *testing.T) {
	ctx := context.Background()
	factory := &counterFactory{}
	e, _ := newTestEngine(t, factory, rng.New(3))
	require.NoError(t, e.RegisterList(ctx, goblinList(t, 0, 0, 2, 0)))

	for range 2 {
		res, err := e.Spawn(ctx, 0)
		require.NoError(t, err)
		require.True(t, res.Spawned())
	}

	res, err := e.Spawn(ctx, 0)
	require.NoError(t, err)
	assert.False(t, res.Spawned())
	assert.Equal(t, ReasonRegionFull, res.Reason)
	assert.Equal(t, 2, e.Alive(0))
	assert.Len(t, factory.created, 2)

	removed, err := e.Despawn(ctx, 0, "goblin-1")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = e.Despawn(ctx, 0, "goblin-1")
	require.NoError(t, err)
	assert.False(t, removed)

	res, err = e.Spawn(ctx, 0)
	require.NoError(t, err)
	assert.True(t, res.Spawned())
	assert.Equal(t, 2, e.Alive(0))
}

func TestSpawn_Cooldown(t *testing.T) {
	ctx := context.Background()
	e, clock := newTestEngine(t, &counterFactory{}, rng.New(3))
	require.NoError(t, e.RegisterList(ctx, goblinList(t, 0, 0, 5, 3)))

	res, err := e.Spawn(ctx, 0)
	require.NoError(t, err)
	require.True(t, res.Spawned())

	clock.turn = 1
	res, err = e.Spawn(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, ReasonCoolingDown, res.Reason)
	assert.Equal(t, int64(2), res.Remaining)

	clock.turn = 3
	res, err = e.Spawn(ctx, 0)
	require.NoError(t, err)
	assert.True(t, res.Spawned())
	assert.Equal(t, 2, e.Alive(0))
}

func TestSpawn_ListWithoutCooldownUsesDefault(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	e := NewEngine(&counterFactory{}, rng.New(3), cooldown.NewService(clock, cooldown.Config{Default: 10}))

	list, err := NewList(catalog.SpawnListDef{
		ID: "rats", Region: 1, MaxAlive: 5,
		Entries: []catalog.EntryDef{{Weight: 1, Template: "rat"}},
	})
	require.NoError(t, err)
	require.Nil(t, list.Cooldown)
	require.NoError(t, e.RegisterList(ctx, list))

	res, err := e.Spawn(ctx, 1)
	require.NoError(t, err)
	require.True(t, res.Spawned())

	res, err = e.Spawn(ctx, 1)
	require.NoError(t, err)
	assert.False(t, res.Spawned())
	assert.Equal(t, ReasonCoolingDown, res.Reason)
	assert.Equal(t, int64(10), res.Remaining)

	clock.turn = 10
	res, err = e.Spawn(ctx, 1)
	require.NoError(t, err)
	assert.True(t, res.Spawned())
	assert.Equal(t, 2, e.Alive(1))
}

func TestSpawn_ListCooldownOverridesDefault(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	e := NewEngine(&counterFactory{}, rng.New(3), cooldown.NewService(clock, cooldown.Config{Default: 10}))
	require.NoError(t, e.RegisterList(ctx, goblinList(t, 0, 0, 5, 2)))

	res, err := e.Spawn(ctx, 0)
	require.NoError(t, err)
	require.True(t, res.Spawned())

	clock.turn = 2
	res, err = e.Spawn(ctx, 0)
	require.NoError(t, err)
	assert.True(t, res.Spawned())
}

func TestSpawn_FactoryErrorDoesNotCount(t *testing.T) {
	ctx := context.Background()
	factory := new(MockFactory)
	boom := errors.New("boom")
	factory.On("Create", mock.Anything, "goblin").Return(nil, boom).Once()
	factory.On("Create", mock.Anything, "goblin").Return(&fakeEntity{id: "g"}, nil).Once()

	e, _ := newTestEngine(t, factory, rng.New(3))
	require.NoError(t, e.RegisterList(ctx, goblinList(t, 0, 0, 2, 10)))

	_, err := e.Spawn(ctx, 0)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, e.Alive(0))

	// The failed attempt must not have started the cooldown.
	res, err := e.Spawn(ctx, 0)
	require.NoError(t, err)
	assert.True(t, res.Spawned())
	factory.AssertExpectations(t)
}

func TestPopulate_IgnoresCooldown(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, &counterFactory{}, rng.New(9))
	require.NoError(t, e.RegisterList(ctx, goblinList(t, 0, 3, 4, 100)))

	results, err := e.Populate(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, 3, e.Alive(0))

	results, err = e.Populate(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTick_RegionOrderAndCaps(t *testing.T) {
	ctx := context.Background()
	factory := &counterFactory{}
	e, clock := newTestEngine(t, factory, rng.New(5))

	cellar := goblinList(t, 2, 0, 1, 2)
	rats, err := NewList(catalog.SpawnListDef{
		ID: "rats", Region: 1, MaxAlive: 3, Cooldown: turns(2),
		Entries: []catalog.EntryDef{{Weight: 1, Template: "rat"}},
	})
	require.NoError(t, err)
	require.NoError(t, e.RegisterList(ctx, cellar))
	require.NoError(t, e.RegisterList(ctx, rats))

	results, err := e.Tick(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Region)
	assert.Equal(t, 2, results[1].Region)
	assert.Equal(t, []string{"rat", "goblin"}, factory.created)

	clock.turn = 1
	results, err = e.Tick(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1, "full region is skipped")
	assert.Equal(t, ReasonCoolingDown, results[0].Reason)

	clock.turn = 2
	_, err = e.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Alive(1))
	assert.Equal(t, 1, e.Alive(2))
}

func TestSpawn_PlacementConsumesRowThenCol(t *testing.T) {
	ctx := context.Background()
	list, err := NewList(catalog.SpawnListDef{
		ID: "bats", Region: 0, MaxAlive: 1, Radius: 2,
		Origin:  domain.Position{Row: 10, Col: 10},
		Entries: []catalog.EntryDef{{Weight: 1, Template: "bat"}},
	})
	require.NoError(t, err)

	// Table roll, then row offset index 4 (+2), then col offset index 0 (-2).
	src := rng.NewSequence(0, 4, 0)
	e, _ := newTestEngine(t, &counterFactory{}, src)
	require.NoError(t, e.RegisterList(ctx, list))

	res, err := e.Spawn(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Position{Row: 12, Col: 8}, res.Position)
	assert.Equal(t, 3, src.Consumed())
}

func TestCatalogFactory(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.AddItems(&catalog.ItemsFile{Version: "1", Items: []catalog.ItemDef{
		{ID: "goblin", Positioned: true},
	}}))

	ctx := context.Background()
	e, _ := newTestEngine(t, CatalogFactory(c), rng.New(11))
	require.NoError(t, e.RegisterList(ctx, goblinList(t, 0, 1, 1, 0)))

	results, err := e.Populate(ctx, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)

	it, ok := results[0].Entity.(*item.Item)
	require.True(t, ok)
	assert.Equal(t, "goblin", it.Kind())
	pos, ok := it.Positioned()
	require.True(t, ok)
	assert.Equal(t, domain.Position{Row: 3, Col: 4}, pos.Position())

	_, err = CatalogFactory(c).Create(ctx, "dragon")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}
