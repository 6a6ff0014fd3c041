package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name            string
		workers         int
		expectedWorkers int
	}{
		{
			name:            "positive workers",
			workers:         5,
			expectedWorkers: 5,
		},
		{
			name:            "zero workers defaults to 1",
			workers:         0,
			expectedWorkers: 1,
		},
		{
			name:            "negative workers defaults to 1",
			workers:         -5,
			expectedWorkers: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.workers, nil)
			if pool == nil {
				t.Fatal("NewPool returned nil")
			}

			if pool.workers != tt.expectedWorkers {
				t.Errorf("expected %d workers, got %d", tt.expectedWorkers, pool.workers)
			}

			if len(pool.tasks) != 0 {
				t.Errorf("expected 0 tasks initially, got %d", len(pool.tasks))
			}

			if pool.running.Load() {
				t.Error("new pool should not be running")
			}
		})
	}
}

func TestPool_Submit(t *testing.T) {
	tests := []struct {
		name        string
		task        Task
		wantErr     bool
		errContains string
	}{
		{
			name: "valid task",
			task: Task{
				Name: "user",
				Execute: func(ctx context.Context) (interface{}, error) {
					return "success", nil
				},
			},
		},
		{
			name: "missing name",
			task: Task{
				Execute: func(ctx context.Context) (interface{}, error) {
					return nil, nil
				},
			},
			wantErr:     true,
			errContains: "name",
		},
		{
			name:        "missing execute function",
			task:        Task{Name: "user"},
			wantErr:     true,
			errContains: "execute function",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(1, slog.Default())
			err := pool.Submit(tt.task)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				} else if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(pool.tasks) != 1 {
				t.Errorf("expected 1 task, got %d", len(pool.tasks))
			}
		})
	}
}

func TestPool_Submit_WhileRunning(t *testing.T) {
	pool := NewPool(1, slog.Default())
	started := make(chan struct{})
	release := make(chan struct{})

	err := pool.Submit(Task{
		Name: "slow",
		Execute: func(ctx context.Context) (interface{}, error) {
			close(started)
			<-release
			return nil, nil
		},
	})
	if err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	done := make(chan []Result)
	go func() {
		done <- pool.Execute(context.Background())
	}()

	<-started
	err = pool.Submit(Task{
		Name:    "late",
		Execute: func(ctx context.Context) (interface{}, error) { return nil, nil },
	})
	if err == nil {
		t.Error("expected error when submitting to a running pool")
	}

	close(release)
	if results := <-done; len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestPool_Execute(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		count   int
	}{
		{name: "single task", workers: 1, count: 1},
		{name: "multiple tasks fewer workers", workers: 2, count: 6},
		{name: "more workers than tasks", workers: 10, count: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.workers, slog.Default())
			for i := 0; i < tt.count; i++ {
				n := i
				err := pool.Submit(Task{
					Name: fmt.Sprintf("lookup-%d", n),
					Execute: func(ctx context.Context) (interface{}, error) {
						// Later tasks finish first to exercise result ordering
						time.Sleep(time.Duration(tt.count-n) * time.Millisecond)
						return n, nil
					},
				})
				if err != nil {
					t.Fatalf("failed to submit task: %v", err)
				}
			}

			results := pool.Execute(context.Background())
			if len(results) != tt.count {
				t.Fatalf("expected %d results, got %d", tt.count, len(results))
			}

			for i, r := range results {
				if r.Error != nil {
					t.Errorf("result %d: unexpected error %v", i, r.Error)
				}
				if r.Name != fmt.Sprintf("lookup-%d", i) {
					t.Errorf("result %d: expected name lookup-%d, got %s", i, i, r.Name)
				}
				if r.Data != i {
					t.Errorf("result %d: expected data %d, got %v", i, i, r.Data)
				}
			}
		})
	}
}

func TestPool_Execute_Empty(t *testing.T) {
	pool := NewPool(3, slog.Default())

	results := pool.Execute(context.Background())
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestPool_Execute_ContextCancellation(t *testing.T) {
	pool := NewPool(1, slog.Default())

	for i := 0; i < 3; i++ {
		err := pool.Submit(Task{
			Name: fmt.Sprintf("lookup-%d", i),
			Execute: func(ctx context.Context) (interface{}, error) {
				select {
				case <-time.After(time.Second):
					return "done", nil
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			},
		})
		if err != nil {
			t.Fatalf("failed to submit task: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	results := pool.Execute(ctx)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i, r := range results {
		if r.Error == nil {
			t.Errorf("result %d: expected an error after cancellation", i)
		}
		if r.Name != fmt.Sprintf("lookup-%d", i) {
			t.Errorf("result %d: expected name to be preserved, got %q", i, r.Name)
		}
	}
}

func TestPool_ExecuteWithProgress(t *testing.T) {
	pool := NewPool(2, slog.Default())

	taskCount := 5
	for i := 0; i < taskCount; i++ {
		err := pool.Submit(Task{
			Name: fmt.Sprintf("account%d", i+1),
			Execute: func(ctx context.Context) (interface{}, error) {
				time.Sleep(5 * time.Millisecond)
				return "done", nil
			},
		})
		if err != nil {
			t.Fatalf("failed to submit task: %v", err)
		}
	}

	var progressCalls atomic.Int32
	var mu sync.Mutex
	seen := make(map[int]bool)

	results := pool.ExecuteWithProgress(context.Background(), func(completed, total int) {
		progressCalls.Add(1)
		if total != taskCount {
			t.Errorf("expected total %d, got %d", taskCount, total)
		}
		mu.Lock()
		seen[completed] = true
		mu.Unlock()
	})

	if len(results) != taskCount {
		t.Errorf("expected %d results, got %d", taskCount, len(results))
	}

	if calls := progressCalls.Load(); calls != int32(taskCount) {
		t.Errorf("expected %d progress calls, got %d", taskCount, calls)
	}

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i <= taskCount; i++ {
		if !seen[i] {
			t.Errorf("progress never reported %d/%d", i, taskCount)
		}
	}
}

func TestPool_PartialFailures(t *testing.T) {
	pool := NewPool(3, slog.Default())

	tasks := []struct {
		name       string
		shouldFail bool
	}{
		{"main", false},
		{"alt", true},
		{"trading", false},
		{"old", true},
		{"builder", false},
	}

	for _, tc := range tasks {
		shouldFail := tc.shouldFail
		err := pool.Submit(Task{
			Name: tc.name,
			Execute: func(ctx context.Context) (interface{}, error) {
				if shouldFail {
					return nil, errors.New("simulated failure")
				}
				return "success", nil
			},
		})
		if err != nil {
			t.Fatalf("failed to submit task: %v", err)
		}
	}

	results := pool.Execute(context.Background())

	if len(results) != len(tasks) {
		t.Fatalf("expected %d results, got %d", len(tasks), len(results))
	}

	if s := Summarize(results); s.Successful != 3 || s.Failed != 2 {
		t.Errorf("expected 3 successful and 2 failed, got %+v", s)
	}

	failResults := Failures(results)
	if len(failResults) != 2 || failResults[0].Name != "alt" || failResults[1].Name != "old" {
		t.Errorf("unexpected failed results: %+v", failResults)
	}
}

func TestPool_ConcurrentExecution(t *testing.T) {
	pool := NewPool(4, slog.Default())

	var inFlight, peak atomic.Int32
	for i := 0; i < 8; i++ {
		err := pool.Submit(Task{
			Name: fmt.Sprintf("lookup-%d", i),
			Execute: func(ctx context.Context) (interface{}, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				inFlight.Add(-1)
				return nil, nil
			},
		})
		if err != nil {
			t.Fatalf("failed to submit task: %v", err)
		}
	}

	pool.Execute(context.Background())

	if p := peak.Load(); p < 2 {
		t.Errorf("expected tasks to overlap, peak concurrency was %d", p)
	}
	if p := peak.Load(); p > 4 {
		t.Errorf("expected at most 4 concurrent tasks, got %d", p)
	}
}
