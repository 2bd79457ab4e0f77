package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_DebouncedRebuild(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "2016")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	fired := make(chan struct{}, 10)
	w, err := New([]string{dir}, func(Event) {
		calls.Add(1)
		fired <- struct{}{}
	}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watcher time to register directories
	time.Sleep(200 * time.Millisecond)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(filepath.Join(sub, "post.md"), []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild triggered")
	}

	time.Sleep(3 * DebounceDuration)
	if n := calls.Load(); n != 1 {
		t.Errorf("OnEvent called %d times for one burst, want 1", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}

func TestWatcher_StartWaitsForRunningCallback(t *testing.T) {
	dir := t.TempDir()

	var finished atomic.Bool
	started := make(chan struct{}, 1)
	w, err := New([]string{dir}, func(Event) {
		started <- struct{}{}
		time.Sleep(300 * time.Millisecond)
		finished.Store(true)
	}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "post.md"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild triggered")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
	if !finished.Load() {
		t.Error("Start() returned while a rebuild was still running")
	}
}

func TestIsHidden(t *testing.T) {
	tests := map[string]bool{
		"content/.git":         true,
		"content/.post.md.swp": true,
		"content/post.md":      false,
		".":                    false,
	}
	for path, want := range tests {
		if got := isHidden(path); got != want {
			t.Errorf("isHidden(%q) = %v, want %v", path, got, want)
		}
	}
}
