// Package vuser implements the virtual-user browsing state machine: pick a
// root site, build a fresh browser-like HTTP client, and perform bounded,
// jittered, same-domain walks from it until the configured dwell window
// elapses, observing the shared pause signal around every request.
package vuser

import (
	"context"
	"math/rand/v2"
	"net/url"
	"time"

	"github.com/blackridgelabs/rangewalker/internal/errx"
	"github.com/blackridgelabs/rangewalker/pkg/config"
	"github.com/blackridgelabs/rangewalker/pkg/fetcher"
	"github.com/blackridgelabs/rangewalker/pkg/linkextract"
	"github.com/blackridgelabs/rangewalker/pkg/logging"
	"github.com/blackridgelabs/rangewalker/pkg/pause"
)

// User is one long-lived virtual browsing session. Its lifetime is the
// lifetime of the process.
type User struct {
	ID      string
	cfg     *config.Config
	latch   *pause.Latch
	emitter *logging.Emitter
	Status  *StatusCell

	// OnRequest, if set, is called after every fetch attempt so the
	// status/metrics layer can count it without this package depending on
	// that layer.
	OnRequest func()
}

// New constructs a User ready to Run.
func New(id string, cfg *config.Config, latch *pause.Latch, emitter *logging.Emitter) *User {
	return &User{
		ID:      id,
		cfg:     cfg,
		latch:   latch,
		emitter: emitter,
		Status:  NewStatusCell(id),
	}
}

// Run is the outer loop: pick a root, rebuild the client, and repeat fresh
// depth walks of that root until the dwell deadline passes, then pick a new
// root. It returns only when ctx is done.
func (u *User) Run(ctx context.Context) {
	for ctx.Err() == nil {
		root := u.pickRoot()
		host, err := hostOf(root)
		if err != nil {
			continue
		}

		client, err := fetcher.BuildClient()
		if err != nil {
			continue
		}

		deadline := time.Now().Add(time.Duration(u.cfg.SiteSwitchMins) * time.Minute)
		for {
			u.walk(ctx, client, root, host)
			if ctx.Err() != nil {
				return
			}
			if !time.Now().Before(deadline) {
				break
			}
		}
	}
}

// walk performs one bounded-depth same-domain crawl from root, reusing
// client (and its accumulated cookies) for every request. It returns when
// the walk is abandoned (fetch failure or no unvisited same-domain link) or
// the maximum depth is reached.
func (u *User) walk(ctx context.Context, client *fetcher.Client, root, host string) {
	visited := map[string]bool{root: true}
	current := root
	depth := 0

	for depth < u.cfg.MaxDepth {
		if err := u.observePause(ctx); err != nil {
			return
		}

		u.Status.Publish(Status{UserID: u.ID, URL: current, Depth: depth, State: StateBrowsing})

		body, err := client.Fetch(ctx, current)
		if u.OnRequest != nil {
			u.OnRequest()
		}
		if err != nil {
			u.emitFetchError(current, depth, err)
			return
		}

		u.Status.Publish(Status{UserID: u.ID, URL: current, Depth: depth, State: StateWaiting})

		if err := u.sleepWithJitter(ctx); err != nil {
			return
		}

		if err := u.observePause(ctx); err != nil {
			return
		}

		links, err := linkextract.ExtractLinks(body, current)
		if err != nil {
			return
		}
		sameDomain := linkextract.FilterSameDomain(links, host)
		picked := linkextract.PickRandomLinks(sameDomain, 1, visited)
		if len(picked) == 0 {
			return
		}

		next := picked[0]
		visited[next] = true
		current = next
		depth++
	}
}

// observePause is the level-triggered observation point: if the signal is
// currently raised, the user announces it is paused before blocking.
func (u *User) observePause(ctx context.Context) error {
	if u.latch.Raised() {
		u.Status.Publish(Status{UserID: u.ID, State: StatePaused})
	}
	return u.latch.Wait(ctx)
}

// sleepWithJitter sleeps for request_delay_mins scaled by a uniform
// [0.7, 1.3] jitter factor drawn fresh for every request.
func (u *User) sleepWithJitter(ctx context.Context) error {
	jitter := 0.7 + rand.Float64()*0.6
	delaySecs := u.cfg.RequestDelayMins * 60 * jitter
	select {
	case <-time.After(time.Duration(delaySecs * float64(time.Second))):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (u *User) pickRoot() string {
	return u.cfg.Sites[rand.IntN(len(u.cfg.Sites))]
}

func hostOf(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errx.Wrap(ErrParseRoot, err)
	}
	return u.Host, nil
}

func (u *User) emitFetchError(currentURL string, depth int, err error) {
	if u.emitter == nil {
		return
	}
	_ = u.emitter.Emit(logging.EventFetchError, "fetch failed, abandoning walk", u.ID, logging.FetchErrorData{
		URL:   currentURL,
		Depth: depth,
		Error: err.Error(),
	})
}
