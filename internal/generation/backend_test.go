package generation

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// fakeBackend is a scriptable Backend recording each completion it receives.
type fakeBackend struct {
	mu        sync.Mutex
	name      string
	available bool
	diagrams  bool
	text      string
	err       error
	panicWith any
	calls     []Completion
}

func (f *fakeBackend) Name() string {
	if f.name == "" {
		return "fake"
	}
	return f.name
}

func (f *fakeBackend) Label() string              { return "Fake (" + f.Name() + ")" }
func (f *fakeBackend) Available() bool            { return f.available }
func (f *fakeBackend) Capabilities() Capabilities { return Capabilities{Diagrams: f.diagrams} }

func (f *fakeBackend) Complete(_ context.Context, c Completion) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.text, f.err
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeBackend) lastCall() Completion {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
