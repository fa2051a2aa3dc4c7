package observability

import (
	"context"
	"testing"
	"time"
)

type countingScanHooks struct {
	starts, files, dones int
}

func (h *countingScanHooks) OnScanStart(context.Context, string) { h.starts++ }
func (h *countingScanHooks) OnFileStart(context.Context, string) { h.files++ }
func (h *countingScanHooks) OnFileDone(context.Context, string, bool, time.Duration, error) {
}
func (h *countingScanHooks) OnScanDone(context.Context, string, int, time.Duration, error) {
	h.dones++
}

func TestSetScanHooks(t *testing.T) {
	defer Reset()

	h := &countingScanHooks{}
	SetScanHooks(h)

	ctx := context.Background()
	Scan().OnScanStart(ctx, ".")
	Scan().OnFileStart(ctx, "a.go")
	Scan().OnFileStart(ctx, "b.go")
	Scan().OnScanDone(ctx, ".", 2, time.Millisecond, nil)

	if h.starts != 1 || h.files != 2 || h.dones != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/2/1", h.starts, h.files, h.dones)
	}
}

func TestSetNilKeepsDefaults(t *testing.T) {
	defer Reset()

	SetScanHooks(nil)
	SetCacheHooks(nil)

	// Must still be callable without panicking.
	Scan().OnFileStart(context.Background(), "x")
	Cache().OnCacheHit(context.Background(), "entry")
}

func TestReset(t *testing.T) {
	h := &countingScanHooks{}
	SetScanHooks(h)
	Reset()

	Scan().OnScanStart(context.Background(), ".")
	if h.starts != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
