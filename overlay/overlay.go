// Package overlay draws Dear ImGui widgets on top of an Ebiten frame.
// Front ends register Items once and call Begin, Render and End from their
// Update method, then Draw after their own drawing.
package overlay

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Item holds a Dear ImGui render function. Items render in the order they
// were added.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// It is sampled at the start of every frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Backend wraps the Ebiten-specific Dear ImGui backend implementation.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the Ebiten window and the ImGui context.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
	return &Backend{EbitenBackend: b}
}

// Layer owns the registered items and the per-frame input state.
type Layer struct {
	backend *Backend
	items   []Item
	state   InputState
}

// NewLayer returns a layer drawing through b. A nil backend is allowed for
// rendering items without a window.
func NewLayer(b *Backend) *Layer {
	return &Layer{backend: b}
}

// Add registers items after the existing ones.
func (l *Layer) Add(items ...Item) {
	l.items = append(l.items, items...)
}

// State returns the input state sampled by the last Begin.
func (l *Layer) State() InputState { return l.state }

// Begin starts an ImGui frame and samples input capture.
func (l *Layer) Begin() {
	if l.backend == nil {
		return
	}
	l.backend.BeginFrame()
	io := imgui.CurrentIO()
	l.state.WantCaptureMouse = io.WantCaptureMouse()
	l.state.WantCaptureKeyboard = io.WantCaptureKeyboard()
}

// Render runs every item's render function.
func (l *Layer) Render() {
	for _, item := range l.items {
		if item.Render != nil {
			item.Render()
		}
	}
}

// End finishes the ImGui frame started by Begin.
func (l *Layer) End() {
	if l.backend != nil {
		l.backend.EndFrame()
	}
}

// Draw renders the ImGui draw data over screen.
func (l *Layer) Draw(screen *ebiten.Image) {
	if l.backend != nil {
		l.backend.Draw(screen)
	}
}

// Layout forwards the outside size to the backend.
func (l *Layer) Layout(width, height int) {
	if l.backend != nil {
		l.backend.Layout(width, height)
	}
}
