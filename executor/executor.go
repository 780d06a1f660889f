package executor

import "sync"

// Executor runs a unit of work on some execution context.
type Executor interface {
	Execute(fn func())
}

// Serial runs tasks one at a time, in submission order, on a dedicated
// goroutine. It is the default callback context: completions delivered
// through it never run concurrently with each other.
type Serial struct {
	tasks     chan func()
	done      sync.WaitGroup
	closeOnce sync.Once
}

// NewSerial creates a serial executor and starts its worker goroutine.
func NewSerial() *Serial {
	s := &Serial{tasks: make(chan func(), 64)}
	s.done.Add(1)
	go s.run()
	return s
}

func (s *Serial) run() {
	defer s.done.Done()
	for fn := range s.tasks {
		fn()
	}
}

// Execute enqueues fn. It blocks only if the task queue is full.
// Execute must not be called after Close.
func (s *Serial) Execute(fn func()) {
	s.tasks <- fn
}

// Close stops accepting work, runs all queued tasks, and waits for the
// worker goroutine to exit. Safe to call more than once.
func (s *Serial) Close() {
	s.closeOnce.Do(func() { close(s.tasks) })
	s.done.Wait()
}

// Immediate runs tasks inline on the calling goroutine. Useful in tests and
// for callers who explicitly want delivery on the transport goroutine.
type Immediate struct{}

// Execute runs fn synchronously.
func (Immediate) Execute(fn func()) { fn() }
