package logging

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_MetadataStamping(t *testing.T) {
	sink := &captureSink{}
	emitter := NewEmitter(EmitterConfig{RunID: "run-123"}, sink)

	require.NoError(t, emitter.Emit(EventRotationAttempt, "rotating", "", nil))

	require.Len(t, sink.events, 1)
	event := sink.events[0]
	assert.Equal(t, "run-123", event.RunID)
	assert.Equal(t, EventRotationAttempt, event.EventType)
	assert.Equal(t, "rotating", event.Summary)
	assert.True(t, event.Timestamp.UTC().Equal(event.Timestamp), "timestamp should be UTC")
}

func TestEmitter_DataMarshaling(t *testing.T) {
	sink := &captureSink{}
	emitter := NewEmitter(EmitterConfig{RunID: "r"}, sink)

	data := &RotationData{Generation: 1, NewMAC: "aa:bb:cc:dd:ee:ff", NewIP: "10.0.0.5", Success: true}
	require.NoError(t, emitter.Emit(EventRotationResult, "rotated", "", data))

	require.Len(t, sink.events, 1)
	require.NotNil(t, sink.events[0].Data)

	var parsed RotationData
	require.NoError(t, json.Unmarshal(sink.events[0].Data, &parsed))
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", parsed.NewMAC)
	assert.True(t, parsed.Success)
}

func TestEmitter_NilDataOmitted(t *testing.T) {
	sink := &captureSink{}
	emitter := NewEmitter(EmitterConfig{RunID: "r"}, sink)

	require.NoError(t, emitter.Emit(EventPauseRaised, "paused", "", nil))

	require.Len(t, sink.events, 1)
	assert.Nil(t, sink.events[0].Data)
}

func TestEmitter_UserIDStamped(t *testing.T) {
	sink := &captureSink{}
	emitter := NewEmitter(EmitterConfig{RunID: "r"}, sink)

	require.NoError(t, emitter.Emit(EventWalkAbandoned, "gave up", "user-3", nil))

	require.Len(t, sink.events, 1)
	assert.Equal(t, "user-3", sink.events[0].UserID)
}

func TestEmitter_MultiSinkFanOut(t *testing.T) {
	sink1 := &captureSink{}
	sink2 := &captureSink{}
	emitter := NewEmitter(EmitterConfig{RunID: "r"}, sink1, sink2)

	require.NoError(t, emitter.Emit(EventRotationAttempt, "test", "", nil))

	assert.Len(t, sink1.events, 1)
	assert.Len(t, sink2.events, 1)
}

func TestEmitter_NoSinksDoesNotError(t *testing.T) {
	emitter := NewEmitter(EmitterConfig{RunID: "r"})
	assert.NoError(t, emitter.Emit(EventRotationAttempt, "test", "", nil))
}

type errorSink struct{ err error }

func (s *errorSink) Write(*Event) error { return s.err }
func (s *errorSink) Close() error       { return s.err }

func TestEmitter_SinkErrorPropagates(t *testing.T) {
	sink := &errorSink{err: errors.New("write failed")}
	emitter := NewEmitter(EmitterConfig{RunID: "r"}, sink)

	assert.Error(t, emitter.Emit(EventRotationAttempt, "test", "", nil))
}

func TestEmitter_Close(t *testing.T) {
	sink1 := &captureSink{}
	sink2 := &captureSink{}
	emitter := NewEmitter(EmitterConfig{RunID: "r"}, sink1, sink2)

	require.NoError(t, emitter.Close())
	assert.True(t, sink1.closed)
	assert.True(t, sink2.closed)
}

func TestEmitter_CloseReturnsFirstError(t *testing.T) {
	sink1 := &errorSink{err: errors.New("close1")}
	sink2 := &errorSink{err: errors.New("close2")}
	emitter := NewEmitter(EmitterConfig{RunID: "r"}, sink1, sink2)

	err := emitter.Close()
	require.Error(t, err)
	assert.Equal(t, "close1", err.Error())
}

func TestEmitter_DataMarshalErrorWraps(t *testing.T) {
	sink := &captureSink{}
	emitter := NewEmitter(EmitterConfig{RunID: "r"}, sink)

	err := emitter.Emit(EventFetchError, "test", "", make(chan int))
	assert.ErrorIs(t, err, ErrMarshalData)
}
