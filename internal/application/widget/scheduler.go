package widget

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Job is one typesetting pass. Pending jobs sharing a Key are coalesced.
type Job struct {
	Key string
	Run func(ctx context.Context) error
}

// Completion reports a finished job.
type Completion struct {
	Key string
	Err error
}

// Scheduler runs jobs without making the caller wait for their outcome.
type Scheduler interface {
	Schedule(Job)
}

// Immediate runs each job inline on the caller's goroutine.
type Immediate struct {
	OnError func(key string, err error)
}

// Schedule implements Scheduler.
func (s Immediate) Schedule(job Job) {
	if err := job.Run(context.Background()); err != nil && s.OnError != nil {
		s.OnError(job.Key, err)
	}
}

const completionBuffer = 64

// Queue runs jobs in issue order on a single worker goroutine. A job
// scheduled while an older job with the same key is still pending replaces
// it in its queue position, so only the newest request per surface is
// typeset.
type Queue struct {
	ctx context.Context
	log *zap.SugaredLogger

	mu      sync.Mutex
	pending []Job
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan Completion
	once sync.Once
	wg   sync.WaitGroup
}

// NewQueue starts the worker. It exits when ctx ends or Close is called.
func NewQueue(ctx context.Context, log *zap.SugaredLogger) *Queue {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	q := &Queue{
		ctx:  ctx,
		log:  log,
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
		done: make(chan Completion, completionBuffer),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

// Schedule implements Scheduler. Jobs scheduled after Close are dropped.
func (q *Queue) Schedule(job Job) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	replaced := false
	if job.Key != "" {
		for i, p := range q.pending {
			if p.Key == job.Key {
				q.pending[i] = job
				replaced = true
				break
			}
		}
	}
	if !replaced {
		q.pending = append(q.pending, job)
	}
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Done delivers completions. It is closed when the worker exits. Completions
// are dropped when nobody keeps up with the channel.
func (q *Queue) Done() <-chan Completion {
	return q.done
}

// Pending returns the number of jobs waiting to run.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close runs the remaining jobs and stops the worker.
func (q *Queue) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		close(q.stop)
	})
	q.wg.Wait()
}

func (q *Queue) run() {
	defer q.wg.Done()
	defer close(q.done)

	for {
		q.drain()
		select {
		case <-q.wake:
		case <-q.stop:
			q.drain()
			return
		case <-q.ctx.Done():
			return
		}
	}
}

func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		job := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		if q.ctx.Err() != nil {
			return
		}
		err := job.Run(q.ctx)
		if err != nil {
			q.log.Warnw("typeset job failed", "key", job.Key, "error", err)
		}
		select {
		case q.done <- Completion{Key: job.Key, Err: err}:
		default:
		}
	}
}
