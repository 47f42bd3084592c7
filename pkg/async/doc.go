// Package async implements a Future pattern for asynchronous computations with
// timeout support, built on Go generics.
//
// Future[U] represents the result of an asynchronous computation. It provides
// methods to wait for completion (Await), check status without blocking
// (IsComplete), and bound the wait (AwaitWithTimeout).
//
// Basic usage:
//
//	future := async.Async(ctx, path, func(ctx context.Context, path string) ([]byte, error) {
//		return os.ReadFile(path)
//	})
//
//	// Do other work...
//
//	data, err := future.Await()
//
// Bounding the wait:
//
//	data, err := future.AwaitWithTimeout(500 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		// the computation is still running; its result will be discarded
//	}
//
// WaitAll collects the results of several futures in order:
//
//	results, err := async.WaitAll(futures...)
//
// All operations are safe for concurrent use. Each Async call spawns exactly
// one goroutine; context cancellation is checked before the function runs, so
// a pre-cancelled context never executes work.
package async
