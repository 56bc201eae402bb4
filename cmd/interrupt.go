package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// interruptRouter sends Ctrl+C to the running countdown if one is armed and
// otherwise exits the program.
type interruptRouter struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	exit   func()
}

func newInterruptRouter(exit func()) *interruptRouter {
	return &interruptRouter{exit: exit}
}

// Arm returns a context cancelled by the next interrupt, until disarmed.
func (r *interruptRouter) Arm(ctx context.Context) (context.Context, context.CancelFunc) {
	armed, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	return armed, func() {
		r.mu.Lock()
		r.cancel = nil
		r.mu.Unlock()
		cancel()
	}
}

func (r *interruptRouter) interrupt() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		return
	}
	r.exit()
}

// listen routes the given signals until the returned stop func is called.
func (r *interruptRouter) listen(sigs ...os.Signal) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ch:
				r.interrupt()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
