// Package rotation periodically tears down and rebuilds the host's
// link-layer and network-layer identity while holding every virtual user
// at a quiescent point, so no HTTP request straddles a rotation boundary.
package rotation

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/blackridgelabs/rangewalker/pkg/config"
	"github.com/blackridgelabs/rangewalker/pkg/logging"
	"github.com/blackridgelabs/rangewalker/pkg/macgen"
	"github.com/blackridgelabs/rangewalker/pkg/netctl"
	"github.com/blackridgelabs/rangewalker/pkg/pause"
)

const drainDelay = 1 * time.Second

// Identity is the host's current rotated MAC/IP, as last applied.
type Identity struct {
	MAC    string
	Vendor string
	IP     string
}

// Supervisor is the rotation timer: it fires once at startup and then every
// RotationIntervalMins, drawing a fresh MAC and IP, pausing all users,
// applying the change, and resuming them regardless of outcome.
type Supervisor struct {
	cfg     *config.Config
	adapter string
	gateway string
	dns     string
	runner  netctl.Runner
	latch   *pause.Latch
	emitter *logging.Emitter

	prefixLen int
	hosts     []string

	mu         sync.RWMutex
	generation int64
	current    Identity

	// OnResult, if set, is called after every rotation attempt so a caller
	// (the status/metrics layer) can record it without this package
	// depending on that layer.
	OnResult func(Result)
}

// Result is the outcome of one rotation attempt, handed to OnResult.
type Result struct {
	Generation int64
	Old        Identity
	New        Identity
	Success    bool
	Error      string
	Duration   time.Duration
}

// New builds a Supervisor bound to adapter, with its IP candidate pool
// precomputed from cfg.CIDR.
func New(cfg *config.Config, adapter, gateway, dns string, runner netctl.Runner, latch *pause.Latch, emitter *logging.Emitter) (*Supervisor, error) {
	hosts, prefixLen, err := hostAddresses(cfg.CIDR, gateway)
	if err != nil {
		return nil, err
	}
	if len(hosts) == 0 {
		return nil, ErrNoHostCandidates
	}
	return &Supervisor{
		cfg:       cfg,
		adapter:   adapter,
		gateway:   gateway,
		dns:       dns,
		runner:    runner,
		latch:     latch,
		emitter:   emitter,
		prefixLen: prefixLen,
		hosts:     hosts,
	}, nil
}

// Run fires an immediate rotation and then one every RotationIntervalMins,
// until ctx is done.
func (s *Supervisor) Run(ctx context.Context) {
	s.rotate(ctx)

	ticker := time.NewTicker(time.Duration(s.cfg.RotationIntervalMins) * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.rotate(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Current returns the most recently applied identity.
func (s *Supervisor) Current() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Generation returns the number of rotation attempts made so far.
func (s *Supervisor) Generation() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Supervisor) rotate(ctx context.Context) {
	start := time.Now()
	addr, err := macgen.Generate()
	if err != nil {
		s.emit(logging.EventRotationResult, "mac generation failed", s.Current(), Identity{}, false, err)
		s.reportResult(s.Current(), s.Current(), false, err, time.Since(start))
		return
	}
	ip := s.pickFreshIP()
	next := Identity{MAC: addr.MAC, Vendor: addr.Vendor, IP: ip}

	s.emit(logging.EventRotationAttempt, "rotation starting", s.Current(), next, false, nil)

	s.latch.Raise()
	if s.emitter != nil {
		_ = s.emitter.Emit(logging.EventPauseRaised, "users paused for rotation", "", nil)
	}
	select {
	case <-time.After(drainDelay):
	case <-ctx.Done():
	}

	steps := netctl.ComposeRotation(s.adapter, addr.MAC, ip, s.prefixLen, s.gateway, s.dns)
	rotErr := netctl.ExecuteRotation(ctx, s.runner, steps)

	s.mu.Lock()
	prev := s.current
	s.generation++
	if rotErr == nil {
		s.current = next
	}
	s.mu.Unlock()

	s.latch.Lower()
	if s.emitter != nil {
		_ = s.emitter.Emit(logging.EventPauseLowered, "users resumed after rotation", "", nil)
	}

	if rotErr != nil {
		s.emit(logging.EventRotationResult, "rotation failed, keeping previous identity", prev, prev, false, rotErr)
		s.reportResult(prev, prev, false, rotErr, time.Since(start))
		return
	}
	s.emit(logging.EventRotationResult, "rotation succeeded", prev, next, true, nil)
	s.reportResult(prev, next, true, nil, time.Since(start))
}

func (s *Supervisor) reportResult(old, applied Identity, success bool, cause error, duration time.Duration) {
	if s.OnResult == nil {
		return
	}
	result := Result{
		Generation: s.Generation(),
		Old:        old,
		New:        applied,
		Success:    success,
		Duration:   duration,
	}
	if cause != nil {
		result.Error = cause.Error()
	}
	s.OnResult(result)
}

func (s *Supervisor) pickFreshIP() string {
	return s.hosts[rand.IntN(len(s.hosts))]
}

func (s *Supervisor) emit(eventType, summary string, prev, id Identity, success bool, cause error) {
	if s.emitter == nil {
		return
	}
	data := logging.RotationData{
		Generation: s.Generation(),
		OldMAC:     prev.MAC,
		NewMAC:     id.MAC,
		Vendor:     id.Vendor,
		OldIP:      prev.IP,
		NewIP:      id.IP,
		Success:    success,
	}
	if cause != nil {
		data.Error = cause.Error()
	}
	_ = s.emitter.Emit(eventType, summary, "", data)
}
