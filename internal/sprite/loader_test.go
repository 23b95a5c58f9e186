package sprite

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu    sync.Mutex
	opens map[ID]int
	block chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{opens: make(map[ID]int)}
}

func (f *fakeSource) Open(id ID) (*Image, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.opens[id]++
	f.mu.Unlock()

	if id == "missing" {
		return nil, ErrUnknownSprite
	}
	return &Image{ID: id, Width: 2, Height: 2, Pix: image.NewRGBA(image.Rect(0, 0, 2, 2))}, nil
}

func (f *fakeSource) count(id ID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens[id]
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestLoaderDeliversOnWait(t *testing.T) {
	l := NewLoader(newFakeSource())

	calls := 0
	l.Load("bug", func() {
		calls++
		if _, ok := l.Get("bug"); !ok {
			t.Error("image should be available inside onReady")
		}
	})

	if _, ok := l.Get("bug"); ok {
		t.Error("Get() should fail before delivery")
	}
	if calls != 0 {
		t.Error("onReady must not run inside Load")
	}

	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("onReady called %d times, expected 1", calls)
	}

	img, ok := l.Get("bug")
	if !ok || img.Width != 2 {
		t.Errorf("Get() = %v, %v", img, ok)
	}

	// A second Dispatch has nothing left to deliver
	if n := l.Dispatch(); n != 0 {
		t.Errorf("Dispatch() = %d, expected 0", n)
	}
}

func TestLoaderFailureNeverCallsBack(t *testing.T) {
	l := NewLoader(newFakeSource())

	called := false
	l.Load("missing", func() { called = true })
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("onReady called for a failed load")
	}
	if _, ok := l.Get("missing"); ok {
		t.Error("failed sprite should not be stored")
	}
}

func TestLoaderCachedSpriteStillCallsBack(t *testing.T) {
	src := newFakeSource()
	l := NewLoader(src)

	l.Load("heart", nil)
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}

	calls := 0
	l.Load("heart", func() { calls++ })
	if calls != 0 {
		t.Error("cached callback must be deferred to Dispatch")
	}
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("onReady called %d times, expected 1", calls)
	}
	if src.count("heart") != 1 {
		t.Errorf("source opened %d times, expected 1", src.count("heart"))
	}
}

func TestLoaderConcurrentLoadsShareImage(t *testing.T) {
	l := NewLoader(newFakeSource())

	var got []*Image
	for i := 0; i < 3; i++ {
		l.Load("boy", func() {
			img, _ := l.Get("boy")
			got = append(got, img)
		})
	}
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("callbacks = %d, expected 3", len(got))
	}
	for _, img := range got[1:] {
		if img != got[0] {
			t.Error("every callback should observe the same stored image")
		}
	}
}

func TestLoaderDispatchDoesNotBlock(t *testing.T) {
	src := newFakeSource()
	src.block = make(chan struct{})
	l := NewLoader(src)

	l.Load("slow", func() {})
	if n := l.Dispatch(); n != 0 {
		t.Errorf("Dispatch() = %d while the decode is blocked", n)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, expected deadline exceeded", err)
	}

	close(src.block)
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}
	if _, ok := l.Get("slow"); !ok {
		t.Error("sprite should be loaded after unblocking")
	}
}
