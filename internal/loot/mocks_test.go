package loot

import (
	"github.com/stretchr/testify/mock"

	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
)

type MockTemplates struct {
	mock.Mock
}

func (m *MockTemplates) Container(id string) (catalog.ContainerDef, error) {
	args := m.Called(id)
	return args.Get(0).(catalog.ContainerDef), args.Error(1)
}

func (m *MockTemplates) InstantiateN(id string, qty int) ([]*item.Item, error) {
	args := m.Called(id, qty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}
