package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/spawn"
)

// RegionReader is the read side of the spawn engine.
type RegionReader interface {
	Regions() []int
	List(region int) (*spawn.List, error)
	Alive(region int) int
}

// RegionStatus summarizes one region's population.
type RegionStatus struct {
	Region   int             `json:"region"`
	List     string          `json:"list"`
	Alive    int             `json:"alive"`
	MinAlive int             `json:"min_alive"`
	MaxAlive int             `json:"max_alive"`
	Cooldown *int64          `json:"cooldown,omitempty"`
	Origin   domain.Position `json:"origin"`
	Radius   int             `json:"radius"`
	Entries  []spawn.Entry   `json:"entries,omitempty"`
}

func regionStatus(engine RegionReader, region int, withEntries bool) (RegionStatus, error) {
	list, err := engine.List(region)
	if err != nil {
		return RegionStatus{}, err
	}
	st := RegionStatus{
		Region:   region,
		List:     list.ID,
		Alive:    engine.Alive(region),
		MinAlive: list.MinAlive,
		MaxAlive: list.MaxAlive,
		Cooldown: list.Cooldown,
		Origin:   list.Origin,
		Radius:   list.Radius,
	}
	if withEntries {
		st.Entries = list.Table.Entries()
	}
	return st, nil
}

// HandleListRegions reports every region's living count and bounds
func HandleListRegions(engine RegionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regions := engine.Regions()
		out := make([]RegionStatus, 0, len(regions))
		for _, region := range regions {
			st, err := regionStatus(engine, region, false)
			if err != nil {
				respondServiceError(w, r, err)
				return
			}
			out = append(out, st)
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: out})
	}
}

// HandleGetRegion reports one region including its spawn table
func HandleGetRegion(engine RegionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := strconv.Atoi(chi.URLParam(r, ParamRegion))
		if err != nil {
			respondServiceError(w, r, fmt.Errorf("%w: region %q", domain.ErrInvalidArgument, chi.URLParam(r, ParamRegion)))
			return
		}
		st, err := regionStatus(engine, region, true)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: st})
	}
}
