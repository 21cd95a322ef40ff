package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	ErrInvalidTriggerTime = errors.New("scheduler: invalid trigger time")
	ErrInvalidInterval    = errors.New("scheduler: invalid interval")
	ErrStopped            = errors.New("scheduler: engine stopped")
)

type Kind string

const (
	KindTick     Kind = "tick"
	KindRollover Kind = "rollover"
)

// Event is delivered on C when a job comes due. At is the clock reading at
// delivery, not the nominal due time.
type Event struct {
	ID   string
	Kind Kind
	At   time.Time
}

type job struct {
	id    string
	kind  Kind
	next  time.Time
	every time.Duration
}

type priorityQueue []job

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].next.Before(pq[j].next)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(job))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// Engine turns periodic and one-shot jobs into events on a single channel.
// Sends never block; events the consumer is too slow for are counted in
// Dropped. Consumers apply all state changes themselves.
type Engine struct {
	clock   clockwork.Clock
	mu      sync.Mutex
	queue   priorityQueue
	out     chan Event
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(clock clockwork.Clock, bufferSize int) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		clock:  clock,
		queue:  make(priorityQueue, 0),
		out:    make(chan Event, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Event {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.stopped = true
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Every emits an event of kind once per interval, first one interval from
// now. Missed intervals are coalesced into one event.
func (e *Engine) Every(kind Kind, interval time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	return e.push(job{id: string(kind), kind: kind, next: e.clock.Now().Add(interval), every: interval})
}

// Schedule emits a single event at the given time.
func (e *Engine) Schedule(id string, kind Kind, at time.Time) error {
	if at.IsZero() {
		return ErrInvalidTriggerTime
	}
	return e.push(job{id: id, kind: kind, next: at})
}

func (e *Engine) push(j job) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}
	heap.Push(&e.queue, j)
	e.signalWakeup()
	return nil
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer clockwork.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := next.Sub(e.clock.Now())
		if wait < 0 {
			wait = 0
		}
		timer = e.resetTimer(timer, wait)

		select {
		case <-timer.Chan():
			now := e.clock.Now()
			for _, ev := range e.popDue(now) {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return time.Time{}, false
	}
	return e.queue[0].next, true
}

// popDue removes every job due at now and re-arms the periodic ones.
func (e *Engine) popDue(now time.Time) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Event, 0)
	var rearm []job
	for len(e.queue) > 0 {
		if e.queue[0].next.After(now) {
			break
		}
		j := heap.Pop(&e.queue).(job)
		out = append(out, Event{ID: j.id, Kind: j.kind, At: now})
		if j.every > 0 {
			for !j.next.After(now) {
				j.next = j.next.Add(j.every)
			}
			rearm = append(rearm, j)
		}
	}
	for _, j := range rearm {
		heap.Push(&e.queue, j)
	}
	return out
}

func (e *Engine) resetTimer(timer clockwork.Timer, d time.Duration) clockwork.Timer {
	if timer == nil {
		return e.clock.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer clockwork.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
