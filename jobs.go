// SPDX-License-Identifier: EPL-2.0

package echofx

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/dsp"
)

// Job is a Process call running on the engine's worker pool.
type Job struct {
	ctx    context.Context
	in     *audio.Buffer
	params dsp.EchoParams

	done chan struct{}
	res  *Result
	err  error
}

func newJob(ctx context.Context, in *audio.Buffer, p dsp.EchoParams) *Job {
	return &Job{ctx: ctx, in: in, params: p, done: make(chan struct{})}
}

func (j *Job) finish(res *Result, err error) {
	j.res, j.err = res, err
	close(j.done)
}

// Done is closed once the job has a result.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the job finishes or ctx is done. Cancelling ctx stops
// the wait only; cancel the context passed to Submit to stop the work.
func (j *Job) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-j.done:
		return j.res, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Submit queues a Process call and returns immediately. The job fails with
// ErrEngineClosed after Close, and with the context error when ctx ends
// before the queue accepts it.
func (e *Engine) Submit(ctx context.Context, in *audio.Buffer, p dsp.EchoParams) *Job {
	j := newJob(ctx, in, p)

	e.startWorkers()

	e.mtx.RLock()
	defer e.mtx.RUnlock()

	if e.closed {
		j.finish(nil, ErrEngineClosed)
		return j
	}

	select {
	case e.jobs <- j:
	case <-ctx.Done():
		j.finish(nil, fmt.Errorf("submitting job: %w", ctx.Err()))
	}

	return j
}

func (e *Engine) startWorkers() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.started || e.closed {
		return
	}

	e.jobs = make(chan *Job, e.cfg.QueueSize)
	for id := range e.cfg.Workers {
		e.wg.Add(1)
		go e.work(id)
	}
	e.started = true
}

func (e *Engine) work(id int) {
	defer e.wg.Done()

	log := e.log.WithFields(logrus.Fields{"function": "Engine.work", "worker": id})
	log.Debug("Worker started")

	for j := range e.jobs {
		if err := j.ctx.Err(); err != nil {
			j.finish(nil, fmt.Errorf("job cancelled before start: %w", err))
			continue
		}

		res, err := e.Process(j.ctx, j.in, j.params)
		j.finish(res, err)
	}

	log.Debug("Worker stopped")
}

// Close stops accepting jobs, lets the workers drain the queue and waits
// for them to exit. It is safe to call more than once.
func (e *Engine) Close() error {
	e.mtx.Lock()
	if e.closed {
		e.mtx.Unlock()
		return nil
	}
	e.closed = true
	if e.started {
		close(e.jobs)
	}
	e.mtx.Unlock()

	e.wg.Wait()

	return nil
}
