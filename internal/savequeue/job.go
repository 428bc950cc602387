// Package savequeue provides a sharded work-queue guaranteeing FIFO order per
// key while allowing parallelism across shards. The session uses it, behind an
// opt-in, to sequence saves per entity so overlapping responses for the same
// card can never land out of order. Jobs run in enqueue order within a shard;
// concurrent Submit calls for one key are ordered by whichever enqueues first.
package savequeue

import "context"

// Job is a unit of work executed by an Executor.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a closure to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job.
func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }
