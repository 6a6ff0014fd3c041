package util

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestWatchSignals(t *testing.T) {
	sigCh := make(chan os.Signal, 2)
	exited := make(chan int, 1)

	ctx := watchSignals(context.Background(), sigCh, func(code int) { exited <- code })

	select {
	case <-ctx.Done():
		t.Fatal("context cancelled before any signal")
	default:
	}

	sigCh <- syscall.SIGINT
	select {
	case <-ctx.Done():
		if !errors.Is(ctx.Err(), context.Canceled) {
			t.Errorf("ctx.Err() = %v, want context.Canceled", ctx.Err())
		}
	case <-time.After(time.Second):
		t.Fatal("context not cancelled after the first signal")
	}

	select {
	case code := <-exited:
		t.Fatalf("exited with %d after a single signal", code)
	default:
	}

	sigCh <- syscall.SIGTERM
	select {
	case code := <-exited:
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	case <-time.After(time.Second):
		t.Fatal("second signal did not force an exit")
	}
}

func TestWatchSignals_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx := watchSignals(parent, make(chan os.Signal), func(int) {
		t.Error("exit called without a signal")
	})

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled with its parent")
	}
}
