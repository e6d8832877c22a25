package walk

import "sync"

// pool runs tasks on at most size goroutines, the caller included. When every
// slot is taken, Go runs the task inline instead of blocking, so a task may
// itself submit tasks without risking a deadlock. A pool of size 1 runs
// everything on the caller.
type pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

func newPool(size int) *pool {
	p := &pool{}
	if size > 1 {
		p.sem = make(chan struct{}, size-1)
	}

	return p
}

// Go runs fn on a free worker, or inline when there is none.
func (p *pool) Go(fn func()) {
	if p.sem == nil {
		fn()

		return
	}

	select {
	case p.sem <- struct{}{}:
		p.wg.Add(1)

		go func() {
			defer p.wg.Done()
			defer func() { <-p.sem }()

			fn()
		}()
	default:
		fn()
	}
}

// Wait blocks until every task submitted so far, and every task those tasks
// submitted, has returned.
func (p *pool) Wait() {
	p.wg.Wait()
}
