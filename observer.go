package relwatch

import (
	"fmt"
	"sync"
)

// UISize is the presentation size hint carried in Options. The core never
// interprets it; it is handed to observers so a presentation layer can size
// itself.
type UISize struct {
	Width  int
	Height int
}

// Observer receives the state transitions of a check so a presentation layer
// can render independently of the result callback. Methods may be invoked
// from the worker goroutine of an asynchronous check; observers that own UI
// state must re-dispatch onto their own execution context.
type Observer interface {
	// CheckStarted fires before any network activity.
	CheckStarted(size UISize)

	// ResultReceived fires after a successful check. release is nil when
	// hasUpdate is false.
	ResultReceived(release *ReleaseInfo, hasUpdate bool)

	// ErrorReceived fires when the check failed at any stage.
	ErrorReceived(err error)
}

// observerSet is a mutex-guarded fan-out registry for observers.
type observerSet struct {
	mu        sync.RWMutex
	observers map[string]Observer
	nextID    uint64
}

func newObserverSet() *observerSet {
	return &observerSet{observers: make(map[string]Observer)}
}

func (s *observerSet) attach(o Observer) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := fmt.Sprintf("observer-%d", s.nextID)
	s.observers[id] = o

	return id
}

func (s *observerSet) detach(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.observers, id)
}

func (s *observerSet) each(fn func(Observer)) {
	s.mu.RLock()
	snapshot := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		snapshot = append(snapshot, o)
	}
	s.mu.RUnlock()

	for _, o := range snapshot {
		fn(o)
	}
}
