// Package frame provides a cancellable "run this before the next repaint" scheduler.
// The host decides when a repaint happens by calling Queue.Flush; games only
// request and cancel frames.
package frame

// ID identifies a requested frame. The zero ID is never issued.
type ID uint64

// Scheduler requests and cancels one-shot frame callbacks.
type Scheduler interface {
	// Request queues fn to run on the next flush and returns its ID.
	Request(fn func()) ID

	// Cancel drops a pending request. Unknown or already-run IDs are ignored.
	Cancel(id ID)
}

type request struct {
	id ID
	fn func()
}

// Queue is a single-threaded Scheduler. Callbacks requested while a flush is
// running are deferred to the following flush, so a self-rescheduling tick
// runs exactly once per flush.
type Queue struct {
	last     ID
	pending  []request
	inFlight []request // Batch being flushed; cancelled entries get a nil fn
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Request queues fn for the next flush.
func (q *Queue) Request(fn func()) ID {
	q.last++
	q.pending = append(q.pending, request{id: q.last, fn: fn})
	return q.last
}

// Cancel removes a pending request, including one waiting in the batch
// currently being flushed.
func (q *Queue) Cancel(id ID) {
	if id == 0 {
		return
	}
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.inFlight {
		if q.inFlight[i].id == id {
			q.inFlight[i].fn = nil
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next flush.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Flush runs every callback that was queued before the call, in request order,
// and returns how many ran.
func (q *Queue) Flush() int {
	q.inFlight = q.pending
	q.pending = nil

	ran := 0
	for i := range q.inFlight {
		fn := q.inFlight[i].fn
		if fn == nil {
			continue
		}
		q.inFlight[i].fn = nil
		fn()
		ran++
	}
	q.inFlight = nil
	return ran
}
