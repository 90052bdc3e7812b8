package gui

import (
	"sync"
)

// fakeSurface records what the controller does to a window
type fakeSurface struct {
	name  string
	order *renderLog

	mu        sync.Mutex
	shown     bool
	focused   int
	geometry  Geometry
	intercept func()
	renderErr error
	renders   int
}

type renderLog struct {
	mu    sync.Mutex
	names []string
}

func (l *renderLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

func (l *renderLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.names...)
}

func newFakeSurface(name string, order *renderLog, g Geometry) *fakeSurface {
	return &fakeSurface{name: name, order: order, shown: true, geometry: g}
}

func (f *fakeSurface) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = true
}

func (f *fakeSurface) Hide() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = false
}

func (f *fakeSurface) RequestFocus() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused++
}

func (f *fakeSurface) Geometry() Geometry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.geometry
}

func (f *fakeSurface) Place(g Geometry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.geometry = g
}

func (f *fakeSurface) SetCloseIntercept(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intercept = fn
}

func (f *fakeSurface) Render() error {
	f.mu.Lock()
	f.renders++
	err := f.renderErr
	f.mu.Unlock()

	if f.order != nil {
		f.order.add(f.name)
	}
	return err
}

// close simulates the native close button
func (f *fakeSurface) close() {
	f.mu.Lock()
	fn := f.intercept
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (f *fakeSurface) isShown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shown
}

func (f *fakeSurface) focusCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

func (f *fakeSurface) renderCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.renders
}
