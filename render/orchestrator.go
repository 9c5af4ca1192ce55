package render

import (
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter/visual"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	surface   Surface
	buffer    *RenderBuffer
	viewport  Viewport
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator sized to the surface
// The bottom HUD rows are excluded from the arena viewport
func NewRenderOrchestrator(surface Surface, viewport Viewport) *RenderOrchestrator {
	o := &RenderOrchestrator{
		surface:   surface,
		buffer:    NewRenderBuffer(0, 0),
		viewport:  viewport,
		renderers: make([]rendererEntry, 0, 8),
	}
	o.Resize(surface.Size())
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer and viewport dimensions
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.viewport.Resize(width, height-visual.HUDRows)
}

// Viewport returns the current arena viewport
func (o *RenderOrchestrator) Viewport() Viewport {
	return o.viewport
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(world *engine.World) {
	world.RunSafe(func() {
		width, height := o.buffer.Size()
		ctx := NewRenderContext(world, o.viewport, width, height)

		o.buffer.Clear()
		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
				continue
			}
			entry.renderer.Render(ctx, o.buffer)
		}
	})

	o.buffer.FlushTo(o.surface)
}
