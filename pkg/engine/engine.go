// Package engine wires the core components — virtual users, the rotation
// supervisor, the status console, and the shutdown coordinator — into one
// running process, the way matchlock's cmd_run.go assembles a sandbox from
// its constituent subsystems.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/blackridgelabs/rangewalker/pkg/config"
	"github.com/blackridgelabs/rangewalker/pkg/logging"
	"github.com/blackridgelabs/rangewalker/pkg/netctl"
	"github.com/blackridgelabs/rangewalker/pkg/pause"
	"github.com/blackridgelabs/rangewalker/pkg/rotation"
	"github.com/blackridgelabs/rangewalker/pkg/shutdown"
	"github.com/blackridgelabs/rangewalker/pkg/status"
	"github.com/blackridgelabs/rangewalker/pkg/vuser"
)

// Options are the pieces assembled outside the core (CLI-prompted config,
// the chosen adapter, logging sinks) that Engine needs to start.
type Options struct {
	Config     *config.Config
	Adapter    netctl.Adapter
	Gateway    string
	DNS        string
	RunID      string
	StatusAddr string
	Sinks      []logging.Sink

	// Runner executes the commands that mutate and inspect network state.
	// Tests supply a fake; a nil Runner defaults to netctl.ExecRunner.
	Runner netctl.Runner
}

// Engine owns every background task's lifecycle for one run.
type Engine struct {
	opts     Options
	runner   netctl.Runner
	latch    *pause.Latch
	emitter  *logging.Emitter
	users    []*vuser.User
	sup      *rotation.Supervisor
	statusSv *status.Server
	metrics  *status.Metrics
	ring     *status.RotationRing
	snapshot netctl.Snapshot
}

// New assembles the engine, snapshotting the adapter's original identity so
// it can be restored on shutdown.
func New(ctx context.Context, opts Options) (*Engine, error) {
	runner := opts.Runner
	if runner == nil {
		runner = netctl.ExecRunner{}
	}

	snap, err := netctl.SnapshotOriginalIdentity(ctx, runner, opts.Adapter.Name)
	if err != nil {
		return nil, err
	}

	emitter := logging.NewEmitter(logging.EmitterConfig{RunID: opts.RunID}, opts.Sinks...)
	latch := pause.New()

	reg := prometheus.NewRegistry()
	metrics := status.NewMetrics(reg)

	sup, err := rotation.New(opts.Config, opts.Adapter.Name, opts.Gateway, opts.DNS, runner, latch, emitter)
	if err != nil {
		return nil, err
	}

	users := make([]*vuser.User, opts.Config.NumUsers)
	cells := make(map[string]*vuser.StatusCell, opts.Config.NumUsers)
	for i := range users {
		id := fmt.Sprintf("user-%d", i+1)
		u := vuser.New(id, opts.Config, latch, emitter)
		u.OnRequest = metrics.RecordRequest
		users[i] = u
		cells[id] = u.Status
	}

	ring := status.NewRotationRing(50)
	statusSv := status.New(opts.StatusAddr, cells, ring, metrics)
	metrics.SetActiveUsers(len(users))

	sup.OnResult = func(r rotation.Result) {
		metrics.RecordRotation(r.Success, r.Duration.Seconds())
		ring.Push(status.RotationEvent{
			Timestamp: time.Now(),
			OldMAC:    r.Old.MAC,
			NewMAC:    r.New.MAC,
			Vendor:    r.New.Vendor,
			OldIP:     r.Old.IP,
			NewIP:     r.New.IP,
			Success:   r.Success,
			Error:     r.Error,
		})
	}

	return &Engine{
		opts:     opts,
		runner:   runner,
		latch:    latch,
		emitter:  emitter,
		users:    users,
		sup:      sup,
		statusSv: statusSv,
		metrics:  metrics,
		ring:     ring,
		snapshot: snap,
	}, nil
}

// Run starts every task as a sibling goroutine and blocks until ctx is
// cancelled, at which point it restores the adapter's original identity
// before returning.
func (e *Engine) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	for _, u := range e.users {
		wg.Add(1)
		go func(u *vuser.User) {
			defer wg.Done()
			u.Run(ctx)
		}(u)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		e.sup.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = e.statusSv.Run(ctx)
	}()

	coordinator := shutdown.New(func() {
		restoreCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		netctl.Restore(restoreCtx, e.runner, e.snapshot)
	})
	coordinator.Run(ctx)

	wg.Wait()
	return e.emitter.Close()
}

// ActiveUserCount reports how many virtual-user tasks this engine runs, for
// the active-users gauge.
func (e *Engine) ActiveUserCount() int { return len(e.users) }
