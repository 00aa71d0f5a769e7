package spawn

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// MockSource pins individual random draws.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) IntN(n int) int {
	args := m.Called(n)
	return args.Int(0)
}

// MockFactory records requested templates.
type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) Create(ctx context.Context, template string) (Entity, error) {
	args := m.Called(ctx, template)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Entity), args.Error(1)
}

// fakeEntity is a placeable entity with a fixed id.
type fakeEntity struct {
	id  string
	pos *domain.Position
}

func (f *fakeEntity) ID() string { return f.id }

func (f *fakeEntity) Place(p domain.Position) bool {
	f.pos = &p
	return true
}

// counterFactory hands out entities named template-1, template-2, ...
type counterFactory struct {
	created []string
}

func (c *counterFactory) Create(_ context.Context, template string) (Entity, error) {
	c.created = append(c.created, template)
	return &fakeEntity{id: fmt.Sprintf("%s-%d", template, len(c.created))}, nil
}

type fakeClock struct{ turn int64 }

func (c *fakeClock) Turn() int64 { return c.turn }
