package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCaller struct {
	action string
	params map[string]any
	calls  int
	data   json.RawMessage
	err    error
}

func (s *stubCaller) Call(_ context.Context, action string, params map[string]any) (json.RawMessage, error) {
	s.calls++
	s.action = action
	s.params = params
	return s.data, s.err
}

func TestDispatch_Success(t *testing.T) {
	caller := &stubCaller{data: json.RawMessage(`{"objects":[]}`)}
	r := NewRegistry(caller, zap.NewNop())

	res, err := r.dispatch("scene_get", map[string]interface{}{"includeTransform": true})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.False(t, res.IsError)
	assert.Equal(t, "scene_get", caller.action)
	assert.Equal(t, true, caller.params["includeTransform"])
}

func TestDispatch_CallerFailure(t *testing.T) {
	caller := &stubCaller{err: errors.New("editor unreachable after 3 attempts")}
	r := NewRegistry(caller, zap.NewNop())

	res, err := r.dispatch("scene_get", nil)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleScriptRead_RequiresPath(t *testing.T) {
	caller := &stubCaller{}
	r := NewRegistry(caller, zap.NewNop())

	res, err := r.handleScriptRead(map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	// No round trip for an invalid argument
	assert.Zero(t, caller.calls)

	res, err = r.handleScriptRead(map[string]interface{}{"path": "Assets/A.cs"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "script_read", caller.action)
}

func TestHandleScriptWrite_RequiresContent(t *testing.T) {
	caller := &stubCaller{}
	r := NewRegistry(caller, zap.NewNop())

	res, err := r.handleScriptWrite(map[string]interface{}{"path": "Assets/A.cs"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, caller.calls)
}

func TestHandleAssetFind_RejectsNegativeMaxResults(t *testing.T) {
	caller := &stubCaller{}
	r := NewRegistry(caller, zap.NewNop())

	res, err := r.handleAssetFind(map[string]interface{}{"maxResults": float64(-1)})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, caller.calls)
}

func TestHandleEditorGetLogs_LevelFilter(t *testing.T) {
	caller := &stubCaller{}
	r := NewRegistry(caller, zap.NewNop())

	res, err := r.handleEditorGetLogs(map[string]interface{}{"logLevel": "verbose"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, caller.calls)

	res, err = r.handleEditorGetLogs(map[string]interface{}{"logLevel": "error"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "editor_get_logs", caller.action)
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "ping completed", formatResult("ping", nil))
	assert.Contains(t, formatResult("scene_get", json.RawMessage(`{"a":1}`)), `"a": 1`)
	// Unindentable payloads pass through untouched
	assert.Equal(t, "raw", formatResult("x", json.RawMessage("raw")))
}
