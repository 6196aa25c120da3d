// Package netctl enumerates network adapters, snapshots and rotates their
// link-layer and network-layer identity, and restores the original identity
// on shutdown. Mutation runs through a Runner so the composed command
// sequences remain unit-testable without touching a real interface.
package netctl

import (
	"context"
	"regexp"
	"strings"
)

var excludedPrefixes = []string{"lo", "docker", "veth", "br-", "virbr"}

// Adapter describes one eligible network interface.
type Adapter struct {
	Name string
	MAC  string
	Up   bool
}

// Snapshot is the original identity captured once at startup, before any
// rotation, used only by the restore path on shutdown.
type Snapshot struct {
	Adapter string
	MAC     string
	IP      string // addr/prefix form, e.g. "10.0.0.5/24"
}

var (
	headerPattern = regexp.MustCompile(`^\d+:\s+([^:]+):\s+<([^>]*)>`)
	etherPattern  = regexp.MustCompile(`link/ether\s+([0-9a-fA-F:]+)`)
	inetPattern   = regexp.MustCompile(`inet\s+(\S+)`)
)

// ParseAdapters parses the textual output of "ip link show" into adapter
// descriptors, excluding loopback, bridges, veth pairs, and container
// interfaces by prefix match.
func ParseAdapters(output string) []Adapter {
	var adapters []Adapter
	currentIdx := -1
	for _, line := range strings.Split(output, "\n") {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			name := strings.SplitN(strings.TrimSpace(m[1]), "@", 2)[0]
			if excluded(name) {
				currentIdx = -1
				continue
			}
			adapters = append(adapters, Adapter{
				Name: name,
				Up:   flagsHaveUp(m[2]),
			})
			currentIdx = len(adapters) - 1
			continue
		}
		if currentIdx == -1 {
			continue
		}
		if m := etherPattern.FindStringSubmatch(line); m != nil {
			adapters[currentIdx].MAC = strings.ToLower(m[1])
		}
	}
	return adapters
}

func flagsHaveUp(flags string) bool {
	for _, flag := range strings.Split(flags, ",") {
		if flag == "UP" {
			return true
		}
	}
	return false
}

func excluded(name string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// ParseSnapshot extracts the current MAC and IPv4 address/prefix from the
// textual output of "ip addr show <adapter>".
func ParseSnapshot(adapter, output string) Snapshot {
	snap := Snapshot{Adapter: adapter}
	for _, line := range strings.Split(output, "\n") {
		if snap.MAC == "" {
			if m := etherPattern.FindStringSubmatch(line); m != nil {
				snap.MAC = strings.ToLower(m[1])
			}
		}
		if snap.IP == "" {
			if m := inetPattern.FindStringSubmatch(line); m != nil {
				snap.IP = m[1]
			}
		}
	}
	return snap
}

// EnumerateAdapters runs "ip link show" through runner and parses its output.
func EnumerateAdapters(ctx context.Context, runner Runner) ([]Adapter, error) {
	stdout, stderr, err := runner.Run(ctx, "ip", "link", "show")
	if err != nil {
		return nil, joinRunErr(ErrRunCommand, stderr, err)
	}
	return ParseAdapters(stdout), nil
}

// SnapshotOriginalIdentity runs "ip addr show <adapter>" through runner and
// parses its output.
func SnapshotOriginalIdentity(ctx context.Context, runner Runner, adapter string) (Snapshot, error) {
	stdout, stderr, err := runner.Run(ctx, "ip", "addr", "show", adapter)
	if err != nil {
		return Snapshot{}, joinRunErr(ErrRunCommand, stderr, err)
	}
	return ParseSnapshot(adapter, stdout), nil
}
