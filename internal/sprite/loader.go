package sprite

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// result is a finished decode waiting to be delivered on the frame goroutine.
type result struct {
	id      ID
	img     *Image
	err     error
	onReady func()
}

// Loader decodes sprites in the background and delivers completions on the
// caller's goroutine through Dispatch, so game state is only ever touched
// from the frame loop.
type Loader struct {
	source Source
	logger *log.Logger

	mu       sync.Mutex
	images   map[ID]*Image
	inflight int
	results  chan result
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used to report decode failures.
func WithLogger(l *log.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// NewLoader creates a loader reading from source.
func NewLoader(source Source, opts ...LoaderOption) *Loader {
	l := &Loader{
		source:  source,
		logger:  log.New(io.Discard),
		images:  make(map[ID]*Image),
		results: make(chan result, 64),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load starts loading a sprite. onReady is called exactly once from a later
// Dispatch or Wait once the image is available through Get. Failed loads are
// logged and never call onReady.
func (l *Loader) Load(id ID, onReady func()) {
	l.mu.Lock()
	l.inflight++
	cached := l.images[id]
	l.mu.Unlock()

	go func() {
		if cached != nil {
			l.results <- result{id: id, img: cached, onReady: onReady}
			return
		}
		img, err := l.source.Open(id)
		l.results <- result{id: id, img: img, err: err, onReady: onReady}
	}()
}

// Get returns a loaded sprite. It only succeeds after the sprite's first
// onReady has been delivered.
func (l *Loader) Get(id ID) (*Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.images[id]
	return img, ok
}

// Dispatch delivers every completed load without blocking and returns how
// many callbacks ran.
func (l *Loader) Dispatch() int {
	n := 0
	for {
		select {
		case r := <-l.results:
			l.deliver(r)
			n++
		default:
			return n
		}
	}
}

// Wait blocks until every load started so far has been delivered.
func (l *Loader) Wait(ctx context.Context) error {
	for l.pending() > 0 {
		select {
		case r := <-l.results:
			l.deliver(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (l *Loader) pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight
}

func (l *Loader) deliver(r result) {
	l.mu.Lock()
	l.inflight--
	if r.err == nil {
		if existing, ok := l.images[r.id]; ok {
			r.img = existing
		} else {
			l.images[r.id] = r.img
			l.logger.Debug("sprite loaded", "id", r.id, "width", r.img.Width, "height", r.img.Height)
		}
	}
	l.mu.Unlock()

	if r.err != nil {
		l.logger.Warn("sprite load failed", "id", r.id, "error", r.err)
		return
	}
	if r.onReady != nil {
		r.onReady()
	}
}
