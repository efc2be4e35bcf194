// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about engraving
// runs and font resolution without this module depending on any particular
// metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetFontHooks(&myFontHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, measures)
//	// ... pack rows ...
//	observability.Pipeline().OnLayoutComplete(ctx, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the engraving pipeline.
type PipelineHooks interface {
	// Layout events: measures built and packed into rows.
	OnLayoutStart(ctx context.Context, measures int)
	OnLayoutComplete(ctx context.Context, rows int, duration time.Duration, err error)

	// Render events: document drawn and serialized.
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// FontHooks receives events about glyph resource loading.
type FontHooks interface {
	// OnFontResolved records which font a run uses and where it came from
	// ("flag", "config", "system" or "bundled").
	OnFontResolved(ctx context.Context, source, path string)

	// OnGlyphsMissing records engraving codepoints the font lacks.
	OnGlyphsMissing(ctx context.Context, missing []rune)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopFontHooks is a no-op implementation of FontHooks.
type NoopFontHooks struct{}

func (NoopFontHooks) OnFontResolved(context.Context, string, string) {}
func (NoopFontHooks) OnGlyphsMissing(context.Context, []rune)        {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	fontHooks     FontHooks     = NoopFontHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetFontHooks registers custom font hooks.
func SetFontHooks(h FontHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fontHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Font returns the registered font hooks.
func Font() FontHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fontHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	fontHooks = NoopFontHooks{}
}
