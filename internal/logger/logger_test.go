package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }

func TestMultiHandler(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	debug := slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	warn := slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn})

	l := slog.New(NewMultiHandler(debug, warn)).With("session.id", "abc").WithGroup("move")

	l.Debug("considering", "row", 1)
	l.Warn("rejected", "row", 3)

	assert.Contains(t, debugBuf.String(), "considering")
	assert.Contains(t, debugBuf.String(), "session.id=abc")
	assert.Contains(t, debugBuf.String(), "move.row=3")
	assert.NotContains(t, warnBuf.String(), "considering")
	assert.Contains(t, warnBuf.String(), "rejected")
}

func TestMultiHandler_Enabled(t *testing.T) {
	warn := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := NewMultiHandler(warn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.False(t, NewMultiHandler().Enabled(context.Background(), slog.LevelError))
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	ok := slog.NewTextHandler(&buf, nil)
	h := NewMultiHandler(failingHandler{Handler: ok, err: boom}, ok)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "hello", "later handlers still run")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Error("shown", "move.row", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.EqualValues(t, 2, rec["move.row"])
}

func TestNew_OTel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Output: &buf, OTel: true})
	require.NoError(t, err)

	_, isMulti := l.Handler().(*MultiHandler)
	assert.True(t, isMulti)

	l.Info("bridged")
	assert.Contains(t, buf.String(), "bridged")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}
