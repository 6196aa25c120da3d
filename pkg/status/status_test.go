package status

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackridgelabs/rangewalker/pkg/vuser"
)

func TestRotationRing_EvictsOldestBeyondCapacity(t *testing.T) {
	ring := NewRotationRing(2)
	ring.Push(RotationEvent{NewMAC: "a"})
	ring.Push(RotationEvent{NewMAC: "b"})
	ring.Push(RotationEvent{NewMAC: "c"})

	snap := ring.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "b", snap[0].NewMAC)
	assert.Equal(t, "c", snap[1].NewMAC)
}

func TestTruncateURL_CapsAtSixtyChars(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("a", 100)
	got := truncateURL(long)
	assert.LessOrEqual(t, len(got), maxURLLength)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateURL_LeavesShortURLsAlone(t *testing.T) {
	assert.Equal(t, "https://example.com", truncateURL("https://example.com"))
}

func newTestServer() *Server {
	cellA := vuser.NewStatusCell("user-a")
	cellA.Publish(vuser.Status{UserID: "user-a", URL: "https://example.com/page", Depth: 2, State: vuser.StateBrowsing})
	cellB := vuser.NewStatusCell("user-b")

	ring := NewRotationRing(10)
	ring.Push(RotationEvent{Timestamp: time.Now(), NewMAC: "AA:BB:CC:DD:EE:FF", Success: true})

	return New(":0", map[string]*vuser.StatusCell{"user-a": cellA, "user-b": cellB}, ring, nil)
}

func TestRenderTable_ListsEveryUser(t *testing.T) {
	srv := newTestServer()
	var buf bytes.Buffer
	srv.RenderTable(&buf)
	out := buf.String()
	assert.Contains(t, out, "user-a")
	assert.Contains(t, out, "user-b")
	assert.Contains(t, out, "browsing")
}

func TestHandleStatus_ReturnsJSONWithUsersAndRotations(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest("GET", "/status", nil)
	w := httptest.NewRecorder()
	srv.handleStatus(w, req)

	require.Equal(t, 200, w.Code)
	var resp statusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 2)
	assert.Len(t, resp.Rotations, 1)
}

func TestRun_EmptyAddrSkipsHTTPServerAndReturnsOnCancel(t *testing.T) {
	srv := New("", map[string]*vuser.StatusCell{}, NewRotationRing(1), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestHandleHealthz_ReturnsOK(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.handleHealthz(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
