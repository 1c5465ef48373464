package filekit

import (
	"context"

	"golang.org/x/time/rate"
)

// RetryPolicy decides whether a StatusRetry result may be reissued.
//
// The transfer helpers reissue retried calls without any bound, backoff,
// or yielding of their own; bounding that loop is a policy decision that
// belongs to the handle or its owner. LimitRetries layers a policy onto an
// existing handle without touching the transfer loops themselves.
type RetryPolicy interface {
	// Allow reports whether the attempt-th consecutive retry of the same
	// call may proceed. attempt starts at 1 and resets whenever the handle
	// returns anything other than StatusRetry.
	Allow(attempt int) bool
}

// MaxAttempts returns a policy permitting at most n consecutive retries of
// the same call before the retry is converted into StatusFailed.
func MaxAttempts(n int) RetryPolicy {
	return maxAttempts(n)
}

type maxAttempts int

func (m maxAttempts) Allow(attempt int) bool { return attempt <= int(m) }

// Throttle returns a policy that never refuses a retry but paces retry
// attempts through the given limiter, turning the busy retry loop into a
// rate-limited one.
func Throttle(limiter *rate.Limiter) RetryPolicy {
	return &throttle{limiter: limiter}
}

type throttle struct {
	limiter *rate.Limiter
}

func (t *throttle) Allow(attempt int) bool {
	_ = t.limiter.Wait(context.Background())
	return true
}

// LimitRetries wraps f so that consecutive StatusRetry results from Read,
// Write, and Seek are subject to policy. When the policy refuses an
// attempt, the retry is converted into StatusFailed and an I/O error is
// recorded on the handle.
func LimitRetries(f File, policy RetryPolicy) File {
	return &retryFile{inner: f, policy: policy}
}

type retryFile struct {
	inner  File
	policy RetryPolicy

	// Consecutive retry counts, tracked per operation.
	reads  int
	writes int
	seeks  int
}

func (r *retryFile) Read(p []byte) (int, Status) {
	n, st := r.inner.Read(p)
	return n, r.check(&r.reads, st)
}

func (r *retryFile) Write(p []byte) (int, Status) {
	n, st := r.inner.Write(p)
	return n, r.check(&r.writes, st)
}

func (r *retryFile) Seek(offset int64, whence int) (int64, Status) {
	pos, st := r.inner.Seek(offset, whence)
	return pos, r.check(&r.seeks, st)
}

func (r *retryFile) SetError(err *Error) { r.inner.SetError(err) }

func (r *retryFile) Err() *Error { return r.inner.Err() }

func (r *retryFile) check(counter *int, st Status) Status {
	if st != StatusRetry {
		*counter = 0
		return st
	}
	*counter++
	if r.policy.Allow(*counter) {
		return StatusRetry
	}
	r.inner.SetError(NewError(KindIO, "retry budget exhausted"))
	return StatusFailed
}
