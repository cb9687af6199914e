// Package chi serves the read-only catalog HTTP API.
package chi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kailas-cloud/ngcdex/internal/domain/search/result"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
	cataloguc "github.com/kailas-cloud/ngcdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/ngcdex/internal/usecase/health"
	proximityuc "github.com/kailas-cloud/ngcdex/internal/usecase/proximity"
	searchuc "github.com/kailas-cloud/ngcdex/internal/usecase/search"
)

// Defaults holds the radii used when a request gives none, in arcminutes.
type Defaults struct {
	NearbyRadius   float64
	NeighborRadius float64
}

// Server implements the HTTP handlers.
type Server struct {
	catalog   *cataloguc.Service
	search    *searchuc.Service
	proximity *proximityuc.Service
	health    *healthuc.Service
	defaults  Defaults
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	search *searchuc.Service,
	proximity *proximityuc.Service,
	health *healthuc.Service,
	defaults Defaults,
) *Server {
	if defaults.NearbyRadius <= 0 {
		defaults.NearbyRadius = 60
	}
	if defaults.NeighborRadius <= 0 {
		defaults.NeighborRadius = 30
	}
	return &Server{
		catalog:   catalog,
		search:    search,
		proximity: proximity,
		health:    health,
		defaults:  defaults,
	}
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/objects", s.ListObjects)
		r.Get("/objects/{name}", s.GetObject)
		r.Get("/objects/{name}/neighbors", s.Neighbors)
		r.Get("/nearby", s.Nearby)
		r.Get("/separation", s.Separation)
	})
}

// GetObject handles GET /v1/objects/{name}. With dup=true a duplicate record
// is returned as stored instead of the object it points at.
func (s *Server) GetObject(w http.ResponseWriter, r *http.Request) {
	var dup *bool
	if err := bindQuery(r, map[string]any{"dup": &dup}); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid query: "+err.Error())
		return
	}

	get := s.catalog.Get
	if dup != nil && *dup {
		get = s.catalog.GetRecord
	}
	obj, err := get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, obj)
}

// ListObjects handles GET /v1/objects.
func (s *Server) ListObjects(w http.ResponseWriter, r *http.Request) {
	c, err := bindCriteria(r)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	objects, err := s.search.List(r.Context(), c)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ObjectListResponse{Items: objects, Total: len(objects)})
}

// Neighbors handles GET /v1/objects/{name}/neighbors.
func (s *Server) Neighbors(w http.ResponseWriter, r *http.Request) {
	var radiusParam *float64
	var catalog *string
	if err := bindQuery(r, map[string]any{"radius": &radiusParam, "catalog": &catalog}); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid query: "+err.Error())
		return
	}
	radius := orDefault(radiusParam, s.defaults.NeighborRadius)

	name := chi.URLParam(r, "name")
	hits, err := s.proximity.Neighbors(r.Context(), name, radius, deref(catalog))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, neighborList(name, radius, hits))
}

// Nearby handles GET /v1/nearby?ra=HH:MM:SS&dec=±DD:MM:SS.
func (s *Server) Nearby(w http.ResponseWriter, r *http.Request) {
	var ra, dec string
	var radiusParam *float64
	var catalog *string
	if err := bindQuery(r, map[string]any{"radius": &radiusParam, "catalog": &catalog}); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid query: "+err.Error())
		return
	}
	if err := bindRequired(r, map[string]any{"ra": &ra, "dec": &dec}); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid query: "+err.Error())
		return
	}

	// An unescaped '+' arrives as a space.
	if strings.HasPrefix(dec, " ") {
		dec = "+" + strings.TrimSpace(dec)
	}
	center, err := sky.Parse(ra + " " + dec)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	radius := orDefault(radiusParam, s.defaults.NearbyRadius)
	hits, err := s.proximity.Nearby(r.Context(), center, radius, deref(catalog))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, neighborList(center.String(), radius, hits))
}

// Separation handles GET /v1/separation?from=&to=.
func (s *Server) Separation(w http.ResponseWriter, r *http.Request) {
	var from, to string
	if err := bindRequired(r, map[string]any{"from": &from, "to": &to}); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid query: "+err.Error())
		return
	}

	sep, err := s.proximity.Separation(r.Context(), from, to)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SeparationResponse{
		From:     from,
		To:       to,
		Angular:  sep.Angular,
		DeltaRA:  sep.DeltaRA,
		DeltaDec: sep.DeltaDec,
		Text:     sep.Text(),
	})
}

// HealthCheck handles GET /health. A degraded cache still serves requests.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func neighborList(center string, radius float64, hits []result.Neighbor) NeighborListResponse {
	items := make([]NeighborItem, len(hits))
	for i, h := range hits {
		items[i] = NeighborItem{Object: h.Object(), Distance: h.Distance()}
	}
	return NeighborListResponse{Center: center, RadiusArcmin: radius, Items: items, Total: len(items)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
