package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Task represents a unit of work to be executed by the worker pool
// Each task is named after what it fetches (an account, an endpoint) so that
// results and log lines can be attributed
type Task struct {
	// Name identifies the task in results and logs
	Name string

	// Execute is the function to run for this task
	// Returns the result data and any error encountered
	Execute func(ctx context.Context) (interface{}, error)
}

// Result represents the outcome of executing a task
type Result struct {
	// Name identifies which task this result is from
	Name string

	// Data contains the successful result data (nil if error occurred)
	Data interface{}

	// Error contains any error that occurred during execution (nil if successful)
	Error error

	// Duration is how long the task took to execute
	Duration time.Duration
}

// Pool manages a pool of workers that execute tasks concurrently
// It provides bounded concurrency and progress reporting
type Pool struct {
	// workers is the number of concurrent workers
	workers int

	// tasks is the queue of tasks to execute
	tasks []Task

	// mu protects the tasks slice
	mu sync.Mutex

	// logger for structured logging
	logger *slog.Logger

	// running indicates if the pool is currently executing
	running atomic.Bool
}

// NewPool creates a new worker pool with the specified number of workers
// workers must be > 0, otherwise it defaults to 1
func NewPool(workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Pool{
		workers: workers,
		tasks:   make([]Task, 0),
		logger:  logger,
	}
}

// Submit adds a task to the pool's queue
// Returns an error if the pool is already running or the task is incomplete
func (p *Pool) Submit(task Task) error {
	if p.running.Load() {
		return fmt.Errorf("pool is running, cannot submit new tasks")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if task.Name == "" {
		return fmt.Errorf("task must have a name")
	}

	if task.Execute == nil {
		return fmt.Errorf("task must have an execute function")
	}

	p.tasks = append(p.tasks, task)
	p.logger.Debug("task submitted", "task", task.Name, "total_tasks", len(p.tasks))

	return nil
}

// Execute runs all submitted tasks using the worker pool pattern
// Returns a slice of results in submission order
func (p *Pool) Execute(ctx context.Context) []Result {
	return p.ExecuteWithProgress(ctx, nil)
}

// ExecuteWithProgress runs all tasks with progress reporting
// The progressFn callback is called after each task completes with (completed, total) counts
func (p *Pool) ExecuteWithProgress(ctx context.Context, progressFn func(completed, total int)) []Result {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Error("pool is already running")
		return []Result{}
	}
	defer p.running.Store(false)

	p.mu.Lock()
	taskCount := len(p.tasks)
	if taskCount == 0 {
		p.mu.Unlock()
		p.logger.Debug("no tasks to execute")
		return []Result{}
	}

	// Create a copy of tasks to avoid holding the lock during execution
	tasksCopy := make([]Task, len(p.tasks))
	copy(tasksCopy, p.tasks)
	p.mu.Unlock()

	p.logger.Debug("starting task execution",
		"workers", p.workers,
		"tasks", taskCount)

	startTime := time.Now()

	// Buffer size = task count to avoid blocking
	taskChan := make(chan taskWithIndex, taskCount)
	resultChan := make(chan resultWithIndex, taskCount)

	var completed atomic.Int32

	var wg sync.WaitGroup
	workerCount := p.workers
	if workerCount > taskCount {
		// Don't create more workers than tasks
		workerCount = taskCount
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go p.worker(ctx, i, taskChan, resultChan, &wg, &completed, taskCount, progressFn)
	}

	// Send all tasks to the task channel
	for i, task := range tasksCopy {
		select {
		case taskChan <- taskWithIndex{task: task, index: i}:
		case <-ctx.Done():
			p.logger.Warn("context cancelled while queuing tasks")
			close(taskChan)
			goto waitForWorkers
		}
	}
	close(taskChan)

waitForWorkers:
	wg.Wait()
	close(resultChan)

	results := make([]Result, taskCount)
	for res := range resultChan {
		if res.index >= 0 && res.index < taskCount {
			results[res.index] = res.result
		}
	}

	// For any tasks that didn't complete (e.g., context cancelled before execution)
	// create error results
	for i := range results {
		if results[i].Name == "" {
			results[i] = Result{
				Name:  tasksCopy[i].Name,
				Error: fmt.Errorf("task not executed: %w", ctx.Err()),
			}
		}
	}

	p.logger.Debug("task execution completed",
		"summary", Summarize(results).String(),
		"duration", time.Since(startTime))

	return results
}

// worker is the worker goroutine that processes tasks from the task channel
func (p *Pool) worker(
	ctx context.Context,
	workerID int,
	taskChan <-chan taskWithIndex,
	resultChan chan<- resultWithIndex,
	wg *sync.WaitGroup,
	completed *atomic.Int32,
	total int,
	progressFn func(completed, total int),
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("worker stopping due to context cancellation", "worker_id", workerID)
			return

		case taskItem, ok := <-taskChan:
			if !ok {
				return
			}

			result := p.executeTask(ctx, taskItem.task)

			select {
			case resultChan <- resultWithIndex{result: result, index: taskItem.index}:
			case <-ctx.Done():
				p.logger.Warn("context cancelled while sending result",
					"worker_id", workerID,
					"task", taskItem.task.Name)
				return
			}

			completedCount := completed.Add(1)
			p.logger.Debug("task completed",
				"worker_id", workerID,
				"task", taskItem.task.Name,
				"success", result.Error == nil,
				"progress", fmt.Sprintf("%d/%d", completedCount, total))

			if progressFn != nil {
				progressFn(int(completedCount), total)
			}
		}
	}
}

// executeTask executes a single task and returns the result
func (p *Pool) executeTask(ctx context.Context, task Task) Result {
	startTime := time.Now()

	// Check context before execution
	select {
	case <-ctx.Done():
		return Result{
			Name:     task.Name,
			Error:    fmt.Errorf("task cancelled before execution: %w", ctx.Err()),
			Duration: time.Since(startTime),
		}
	default:
	}

	data, err := task.Execute(ctx)
	duration := time.Since(startTime)

	if err != nil {
		p.logger.Debug("task failed",
			"task", task.Name,
			"error", err,
			"duration", duration)
	}

	return Result{
		Name:     task.Name,
		Data:     data,
		Error:    err,
		Duration: duration,
	}
}

// taskWithIndex pairs a task with its original index for result ordering
type taskWithIndex struct {
	task  Task
	index int
}

// resultWithIndex pairs a result with its original task index
type resultWithIndex struct {
	result Result
	index  int
}
