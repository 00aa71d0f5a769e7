package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
	"github.com/R-Gerard/Roguelike-sub001/internal/spawn"
)

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockTemplateReader struct {
	mock.Mock
}

func (m *MockTemplateReader) Templates() []*catalog.Template {
	return m.Called().Get(0).([]*catalog.Template)
}

func (m *MockTemplateReader) Template(id string) (*catalog.Template, error) {
	args := m.Called(id)
	tpl, _ := args.Get(0).(*catalog.Template)
	return tpl, args.Error(1)
}

type MockRegionReader struct {
	mock.Mock
}

func (m *MockRegionReader) Regions() []int {
	return m.Called().Get(0).([]int)
}

func (m *MockRegionReader) List(region int) (*spawn.List, error) {
	args := m.Called(region)
	list, _ := args.Get(0).(*spawn.List)
	return list, args.Error(1)
}

func (m *MockRegionReader) Alive(region int) int {
	return m.Called(region).Int(0)
}
