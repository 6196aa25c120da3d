package netctl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/blackridgelabs/rangewalker/internal/errx"
)

const settleDelay = 2 * time.Second

// benign substrings match errors that mean the desired state already holds
// (route or address already present/gone), tolerated rather than failing
// the whole rotation.
var benignSubstrings = []string{"No such process", "File exists"}

// RotationStep is one external command in a rotation, kept as data rather
// than an exec.Cmd so the sequence can be composed and compared in tests
// without ever running anything.
type RotationStep struct {
	Name string
	Args []string
}

// String renders the step as a shell-quoted command line, for logs.
func (s RotationStep) String() string {
	return shellquote.Join(append([]string{s.Name}, s.Args...)...)
}

// ComposeRotation produces the fixed seven-command sequence that moves an
// adapter to a new MAC and IP. The MAC change happens with the link down
// because the kernel rejects link-layer writes on an active interface; the
// address operations happen after link-up because flush/add require the
// interface to already exist in an up state. This ordering is not tunable.
func ComposeRotation(adapter, mac, ip string, prefixLen int, gateway, dns string) []RotationStep {
	return []RotationStep{
		{"ip", []string{"link", "set", "dev", adapter, "down"}},
		{"ip", []string{"link", "set", "dev", adapter, "address", mac}},
		{"ip", []string{"link", "set", "dev", adapter, "up"}},
		{"ip", []string{"addr", "flush", "dev", adapter}},
		{"ip", []string{"addr", "add", fmt.Sprintf("%s/%d", ip, prefixLen), "dev", adapter}},
		{"ip", []string{"route", "add", "default", "via", gateway, "dev", adapter}},
		{"sh", []string{"-c", fmt.Sprintf("echo 'nameserver %s' > /etc/resolv.conf", dns)}},
	}
}

// ExecuteRotation runs steps sequentially, tolerating benign errors by
// substring match against stderr. Any other non-zero exit aborts the
// remaining steps and is returned. After the last step it waits for the
// link to settle.
func ExecuteRotation(ctx context.Context, runner Runner, steps []RotationStep) error {
	for _, step := range steps {
		_, stderr, err := runner.Run(ctx, step.Name, step.Args...)
		if err != nil && !isBenign(stderr) {
			return errx.With(ErrRotationStep, " %s: %s: %w", step.String(), stderr, err)
		}
	}
	select {
	case <-time.After(settleDelay):
	case <-ctx.Done():
	}
	return nil
}

func isBenign(stderr string) bool {
	for _, substr := range benignSubstrings {
		if strings.Contains(stderr, substr) {
			return true
		}
	}
	return false
}

// Restore best-effort reverses a rotation on shutdown: adapter down,
// original MAC, adapter up, flush, original IP. Every step's error is
// swallowed so shutdown never hangs waiting on a dying network stack.
func Restore(ctx context.Context, runner Runner, snap Snapshot) {
	if snap.Adapter == "" {
		return
	}
	steps := []RotationStep{
		{"ip", []string{"link", "set", "dev", snap.Adapter, "down"}},
	}
	if snap.MAC != "" {
		steps = append(steps, RotationStep{"ip", []string{"link", "set", "dev", snap.Adapter, "address", snap.MAC}})
	}
	steps = append(steps,
		RotationStep{"ip", []string{"link", "set", "dev", snap.Adapter, "up"}},
		RotationStep{"ip", []string{"addr", "flush", "dev", snap.Adapter}},
	)
	if snap.IP != "" {
		steps = append(steps, RotationStep{"ip", []string{"addr", "add", snap.IP, "dev", snap.Adapter}})
	}
	for _, step := range steps {
		_, _, _ = runner.Run(ctx, step.Name, step.Args...)
	}
}
