// Package server exposes the tour pipeline over HTTP.
//
// Routes:
//
//	GET  /api/nodes  node names of the loaded table
//	POST /api/tour   solve one stop list
//	GET  /healthz    liveness
//	GET  /metrics    Prometheus metrics
//
// A single *distance.Table is shared by every request; it is read-only, so
// handlers run concurrently without locking.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/tourkit/core"
	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/prim_kruskal"
	"github.com/katalvlaran/tourkit/report"
	"github.com/katalvlaran/tourkit/tsp"
)

// maxBody caps the size of a tour request body.
const maxBody = 1 << 20

// TourRequest is the body of POST /api/tour.
type TourRequest struct {
	Start    string   `json:"start"`
	Pickups  []string `json:"pickups"`
	Dropoffs []string `json:"dropoffs"`
	End      string   `json:"end"`

	// MST is prim (default) or kruskal.
	MST    string `json:"mst,omitempty"`
	TwoOpt bool   `json:"two_opt,omitempty"`
}

// Violation is a multigraph node whose degree is not 2.
type Violation struct {
	Node   string `json:"node"`
	Degree int    `json:"degree"`
}

// TourResponse is the body of a successful POST /api/tour.
type TourResponse struct {
	Route       []string          `json:"route"`
	RouteLength int64             `json:"route_length"`
	MST         []report.ViewEdge `json:"mst"`
	MSTWeight   int64             `json:"mst_weight"`
	Odd         []string          `json:"odd"`
	Matching    []report.ViewEdge `json:"matching"`
	Multigraph  []report.ViewEdge `json:"multigraph"`
	Circuit     []string          `json:"circuit"`
	Length      int64             `json:"length"`
	Violations  []Violation       `json:"violations"`

	// Improved and ImprovedLength are set only when two_opt was requested.
	Improved       []string `json:"improved,omitempty"`
	ImprovedLength int64    `json:"improved_length,omitempty"`
}

// Server holds the shared table and the request logger.
type Server struct {
	table  *distance.Table
	logger *log.Logger
}

// New returns a Server answering from t. A nil logger uses log.Default().
func New(t *distance.Table, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	return &Server{table: t, logger: logger}
}

// RegisterRoutes mounts every route on router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/nodes", s.Nodes).Methods(http.MethodGet)
	router.HandleFunc("/api/tour", s.Tour).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Handler returns a fresh router with every route mounted.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.RegisterRoutes(r)

	return r
}

// Nodes answers GET /api/nodes.
func (s *Server) Nodes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"nodes": s.table.Nodes()})
}

// Health answers GET /healthz.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Tour answers POST /api/tour.
func (s *Server) Tour(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	defer func() { tourDuration.Observe(time.Since(began).Seconds()) }()

	var req TourRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, resultBadRequest, "invalid request body: "+err.Error())
		return
	}

	opts := make([]tsp.Option, 0, 2)
	if req.MST != "" {
		opts = append(opts, tsp.WithMSTMethod(req.MST))
	}
	if req.TwoOpt {
		opts = append(opts, tsp.WithTwoOpt())
	}

	stops := tsp.Stops{Start: req.Start, Pickups: req.Pickups, Dropoffs: req.Dropoffs, End: req.End}
	res, err := tsp.SolveStops(s.table, stops, opts...)
	if err != nil {
		status, result := classify(err)
		s.fail(w, status, result, err.Error())
		return
	}

	if n := len(res.Multigraph.Violations); n > 0 {
		degreeViolations.Add(float64(n))
		s.logger.Printf("tour %v: %d degree violations", stops.Sequence(), n)
	}
	tourRequests.WithLabelValues(resultOK).Inc()
	writeJSON(w, http.StatusOK, s.response(res))
}

func (s *Server) response(res *tsp.Result) TourResponse {
	out := TourResponse{
		Route:       core.Names(s.table, res.Route.Nodes),
		RouteLength: res.Route.Length,
		MST:         report.ViewEdges(s.table, res.Tree.Edges()),
		MSTWeight:   res.Tree.Weight,
		Odd:         core.Names(s.table, res.Odd),
		Matching:    report.ViewEdges(s.table, res.Matching),
		Multigraph:  report.ViewEdges(s.table, res.Multigraph.Edges),
		Circuit:     core.Names(s.table, res.Tour.Nodes),
		Length:      res.Tour.Length,
		Violations:  make([]Violation, len(res.Multigraph.Violations)),
	}
	for i, v := range res.Multigraph.Violations {
		out.Violations[i] = Violation{Node: s.table.Name(v.Node), Degree: v.Degree}
	}
	if res.Improved != nil {
		out.Improved = core.Names(s.table, res.Improved.Nodes)
		out.ImprovedLength = res.Improved.Length
	}

	return out
}

// classify maps a pipeline error to an HTTP status and a metrics label.
func classify(err error) (int, string) {
	var se *tsp.StageError
	switch {
	case errors.Is(err, distance.ErrInvalidNode):
		return http.StatusUnprocessableEntity, resultInvalidNode
	case errors.Is(err, prim_kruskal.ErrUnknownMethod):
		return http.StatusBadRequest, resultBadRequest
	case errors.As(err, &se):
		return http.StatusConflict, resultConflict
	default:
		return http.StatusInternalServerError, resultError
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, result, msg string) {
	tourRequests.WithLabelValues(result).Inc()
	s.logger.Printf("tour: %d %s", status, msg)
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
