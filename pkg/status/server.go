// Package status renders the running engine's state three ways from the
// same data: a periodic terminal table, a JSON API, and Prometheus
// collectors.
package status

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blackridgelabs/rangewalker/pkg/config"
	"github.com/blackridgelabs/rangewalker/pkg/vuser"
)

const (
	tickInterval = 5 * time.Second
	maxURLLength = 60
)

// Server holds read-only access to every user's published status, the
// rotation history ring, and the Prometheus registry, and presents all
// three through a terminal tick, a JSON API, and /metrics.
type Server struct {
	addr    string
	users   map[string]*vuser.StatusCell
	ring    *RotationRing
	metrics *Metrics
}

// New builds a Server. users is keyed by user id and is read-only from
// this point on — the map itself is never mutated after construction,
// only the cells it points to.
func New(addr string, users map[string]*vuser.StatusCell, ring *RotationRing, metrics *Metrics) *Server {
	return &Server{addr: addr, users: users, ring: ring, metrics: metrics}
}

// Run serves the JSON/metrics API and prints a table every 5s until ctx is
// done, then shuts the HTTP server down gracefully. An empty addr disables
// the HTTP server entirely; the terminal table still ticks.
func (s *Server) Run(ctx context.Context) error {
	if s.addr == "" {
		s.tickTable(ctx)
		return nil
	}

	srv := &http.Server{Addr: s.addr, Handler: s.router()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go s.tickTable(ctx)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) tickTable(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.RenderTable(os.Stdout)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/status", s.handleStatus)
	r.Get("/healthz", s.handleHealthz)
	if s.metrics != nil && s.metrics.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) sortedStatuses() []vuser.Status {
	statuses := make([]vuser.Status, 0, len(s.users))
	for _, cell := range s.users {
		statuses = append(statuses, cell.Load())
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].UserID < statuses[j].UserID })
	return statuses
}

// RenderTable prints one block listing every user (id, state, truncated
// URL, depth/max), in the teacher's plain tablewriter style. The rotation
// history is not printed here; only /status serves it.
func (s *Server) RenderTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"USER", "STATE", "URL", "DEPTH"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, st := range s.sortedStatuses() {
		table.Append([]string{st.UserID, string(st.State), truncateURL(st.URL), fmt.Sprintf("%d/%d", st.Depth, config.MaxDepth)})
	}
	table.Render()
}

func truncateURL(url string) string {
	if len(url) <= maxURLLength {
		return url
	}
	return url[:maxURLLength-3] + "..."
}

type userStatusJSON struct {
	UserID string `json:"user_id"`
	State  string `json:"state"`
	URL    string `json:"url"`
	Depth  int    `json:"depth"`
}

type statusResponse struct {
	Users     []userStatusJSON `json:"users"`
	Rotations []RotationEvent  `json:"rotations"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	statuses := s.sortedStatuses()
	resp := statusResponse{
		Users:     make([]userStatusJSON, len(statuses)),
		Rotations: s.ring.Snapshot(),
	}
	for i, st := range statuses {
		resp.Users[i] = userStatusJSON{UserID: st.UserID, State: string(st.State), URL: st.URL, Depth: st.Depth}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
