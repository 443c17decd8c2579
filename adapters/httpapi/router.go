// Package httpapi is a thin chi-routed HTTP transport over the feature and
// dm-dt engines, for callers that want feature extraction or a dm-dt map
// over the network instead of via the CLI.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lightcurve/adapters/dmdt"
	"lightcurve/adapters/stats/engine"
	"lightcurve/domain/timeseries"
)

// Router builds the debug HTTP surface: POST /v1/features and
// POST /v1/dmdt, both accepting a JSON body of {t, m, w} arrays.
func Router(extractor *engine.FeatureExtractor[float64]) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/v1/features", handleFeatures(extractor))
	r.Post("/v1/dmdt", handleDmDt)

	return r
}

type lightCurveRequest struct {
	T []float64 `json:"t"`
	M []float64 `json:"m"`
	W []float64 `json:"w,omitempty"`
}

func handleFeatures(extractor *engine.FeatureExtractor[float64]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req lightCurveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ts := timeseries.New(req.T, req.M, req.W)
		values, err := extractor.Eval(ts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		names := extractor.Names()
		out := make(map[string]float64, len(names))
		for i, name := range names {
			out[name] = values[i]
		}
		writeJSON(w, out)
	}
}

type dmdtRequest struct {
	lightCurveRequest
	Size     int     `json:"size"`
	MinLgDt  float64 `json:"min_lgdt"`
	MaxLgDt  float64 `json:"max_lgdt"`
	MinDm    float64 `json:"min_dm"`
	MaxDm    float64 `json:"max_dm"`
	Gaussian bool    `json:"gaussian"`
}

func handleDmDt(w http.ResponseWriter, r *http.Request) {
	var req dmdtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Size <= 0 {
		req.Size = 128
	}
	lgdtGrid := dmdt.NewGrid(req.MinLgDt, req.MaxLgDt, req.Size)
	dmGrid := dmdt.NewGrid(req.MinDm, req.MaxDm, req.Size)
	dmdtEngine := dmdt.New(lgdtGrid, dmGrid)
	ts := timeseries.New(req.T, req.M, req.W)

	var normalized []byte
	if req.Gaussian {
		normalized = dmdt.Normalise(dmdtEngine.Gausses(ts))
	} else {
		normalized = dmdt.NormaliseInts(dmdtEngine.Points(ts))
	}

	rows, cols := dmdtEngine.Shape()
	w.Header().Set("Content-Type", "image/png")
	if err := dmdt.WritePNG(w, normalized, rows, cols); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
