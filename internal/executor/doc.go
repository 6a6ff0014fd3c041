// Package executor runs independent API lookups concurrently.
//
// A command that needs several unrelated responses (a user's profile, their
// presence and their friend count, or every configured account's session)
// submits one Task per lookup and receives the results back in submission
// order, regardless of which request finished first.
//
// # Basic Usage
//
//	pool := executor.NewPool(4, logger)
//
//	pool.Submit(executor.Task{
//	    Name: "profile",
//	    Execute: func(ctx context.Context) (interface{}, error) {
//	        return client.User(ctx, id)
//	    },
//	})
//
//	results := pool.Execute(ctx)
//
// # Progress Reporting
//
//	results := pool.ExecuteWithProgress(ctx, func(completed, total int) {
//	    logger.Debug("progress", "completed", completed, "total", total)
//	})
//
// # Cancellation
//
// Tasks that never started because the context was cancelled come back with
// an error wrapping ctx.Err(), so callers always get one Result per Task.
package executor
