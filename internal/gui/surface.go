package gui

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
)

// ErrSurfaceClosed is returned when rendering a window that has already been torn down
var ErrSurfaceClosed = errors.New("window already closed")

// Geometry is the position and size of a top level window
type Geometry struct {
	X, Y          int
	Width, Height int
}

// String formats the geometry as WIDTHxHEIGHT+X+Y
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", g.Width, g.Height, g.X, g.Y)
}

// Right returns the X coordinate of the right edge
func (g Geometry) Right() int {
	return g.X + g.Width
}

// Surface is a top level window driven by the Controller.
// It hides the UI toolkit so window handling can be exercised without a display.
type Surface interface {
	Show()
	Hide()
	RequestFocus()
	// Geometry returns the window size and its requested position.
	// fyne cannot read window positions, so a window moved by the user keeps reporting the placement.
	Geometry() Geometry
	Place(g Geometry)
	SetCloseIntercept(fn func())
	// Render flushes pending UI changes. It is called from the poll loop goroutine.
	Render() error
}

// fyneSurface adapts a fyne.Window to Surface.
// Render always round trips through the UI thread, which is how a torn down
// window is detected, but only refreshes visible content marked dirty.
type fyneSurface struct {
	window  fyne.Window
	closed  atomic.Bool
	visible atomic.Bool
	dirty   atomic.Bool

	mu        sync.Mutex
	placement Geometry
}

func newFyneSurface(w fyne.Window) *fyneSurface {
	s := &fyneSurface{window: w}
	w.SetOnClosed(func() {
		s.closed.Store(true)
	})
	return s
}

func (s *fyneSurface) Show() {
	s.window.Show()
	s.visible.Store(true)
	s.Invalidate()
}

func (s *fyneSurface) Hide() {
	s.window.Hide()
	s.visible.Store(false)
}

func (s *fyneSurface) RequestFocus() {
	s.window.RequestFocus()
}

func (s *fyneSurface) Geometry() Geometry {
	s.mu.Lock()
	g := s.placement
	s.mu.Unlock()

	size := s.window.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		g.Width = int(size.Width)
		g.Height = int(size.Height)
	}
	return g
}

func (s *fyneSurface) Place(g Geometry) {
	s.mu.Lock()
	s.placement = g
	s.mu.Unlock()

	s.window.Resize(fyne.NewSize(float32(g.Width), float32(g.Height)))
	s.Invalidate()
}

func (s *fyneSurface) SetCloseIntercept(fn func()) {
	s.window.SetCloseIntercept(fn)
}

// Invalidate marks the content for a refresh on the next Render
func (s *fyneSurface) Invalidate() {
	s.dirty.Store(true)
}

func (s *fyneSurface) Render() (err error) {
	if s.closed.Load() {
		return fmt.Errorf("render %q: %w", s.window.Title(), ErrSurfaceClosed)
	}

	fyne.DoAndWait(func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("render %q: %v", s.window.Title(), r)
			}
		}()
		if !s.visible.Load() || !s.dirty.Swap(false) {
			return
		}
		if content := s.window.Content(); content != nil {
			content.Refresh()
		}
	})
	return err
}
