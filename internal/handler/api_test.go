package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/spawn"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	require.NoError(t, c.AddItems(&catalog.ItemsFile{
		Version: "1.0",
		Items: []catalog.ItemDef{
			{ID: "healing_potion", Stack: &catalog.StackDef{Quantity: 1, Value: 25, Mergeable: true, MaxPerSlot: 5},
				Use: &catalog.UseDef{Disposable: true}},
			{ID: "goblin", Positioned: true},
		},
	}))
	return c
}

func serve(t *testing.T, pattern string, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get(pattern, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestHandleListTemplates(t *testing.T) {
	w := serve(t, "/templates", HandleListTemplates(testCatalog(t)), "/templates")

	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData[[]TemplateSummary](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, "goblin", got[0].ID)
	assert.Equal(t, []string{"positioned"}, got[0].Facets)
	assert.Equal(t, "Healing Potion", got[1].Name)
	assert.Equal(t, []string{"stackable", "useable"}, got[1].Facets)
}

func TestHandleGetTemplate(t *testing.T) {
	h := HandleGetTemplate(testCatalog(t))

	t.Run("found", func(t *testing.T) {
		w := serve(t, "/templates/{id}", h, "/templates/healing_potion")
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeData[TemplateDetail](t, w)
		assert.Equal(t, "healing_potion", got.ID)
		require.NotNil(t, got.Definition.Stack)
		assert.Equal(t, 5, got.Definition.Stack.MaxPerSlot)
	})

	t.Run("not found", func(t *testing.T) {
		w := serve(t, "/templates/{id}", h, "/templates/dragon")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgTemplateNotFound)
	})

	t.Run("unexpected error", func(t *testing.T) {
		reader := &MockTemplateReader{}
		reader.On("Template", "x").Return(nil, errors.New("boom"))

		w := serve(t, "/templates/{id}", HandleGetTemplate(reader), "/templates/x")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
		reader.AssertExpectations(t)
	})
}

func TestHandleRegions(t *testing.T) {
	cooldown := int64(5)
	list, err := spawn.NewList(catalog.SpawnListDef{
		ID: "cellar", Region: 2, MinAlive: 1, MaxAlive: 3, Cooldown: &cooldown,
		Entries: []catalog.EntryDef{{Weight: 1, Template: "goblin"}},
	})
	require.NoError(t, err)

	engine := &MockRegionReader{}
	engine.On("Regions").Return([]int{2})
	engine.On("List", 2).Return(list, nil)
	engine.On("List", 9).Return(nil, domain.ErrUnknownRegion)
	engine.On("Alive", 2).Return(2)

	t.Run("list", func(t *testing.T) {
		w := serve(t, "/regions", HandleListRegions(engine), "/regions")
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeData[[]RegionStatus](t, w)
		require.Len(t, got, 1)
		assert.Equal(t, RegionStatus{Region: 2, List: "cellar", Alive: 2, MinAlive: 1, MaxAlive: 3, Cooldown: &cooldown}, got[0])
	})

	t.Run("one region with entries", func(t *testing.T) {
		w := serve(t, "/regions/{region}", HandleGetRegion(engine), "/regions/2")
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeData[RegionStatus](t, w)
		assert.Equal(t, []spawn.Entry{{Weight: 1, Template: "goblin"}}, got.Entries)
	})

	t.Run("unknown region", func(t *testing.T) {
		w := serve(t, "/regions/{region}", HandleGetRegion(engine), "/regions/9")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed region", func(t *testing.T) {
		w := serve(t, "/regions/{region}", HandleGetRegion(engine), "/regions/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
