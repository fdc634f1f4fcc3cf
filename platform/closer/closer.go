package closer

import (
	"context"
	"sync"

	"github.com/you-humble/repair-fulfillment/platform/logger"
)

type closeFn func(ctx context.Context) error

type namedCloser struct {
	name string
	fn   closeFn
}

type closer struct {
	mu      sync.Mutex
	closers []namedCloser
	log     *logger.Logger
}

var global = &closer{}

// SetLogger sets the logger used while closing resources.
func SetLogger(l *logger.Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.log = l
}

// AddNamed registers a resource to be closed on shutdown.
func AddNamed(name string, fn closeFn) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.closers = append(global.closers, namedCloser{name: name, fn: fn})
}

// CloseAll closes registered resources in reverse registration order.
// It keeps going on failures and returns the first error encountered.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	closers := global.closers
	global.closers = nil
	log := global.log
	global.mu.Unlock()

	var firstErr error
	for i := len(closers) - 1; i >= 0; i-- {
		c := closers[i]
		if err := c.fn(ctx); err != nil {
			if log != nil {
				log.Error(ctx, "failed to close resource",
					logger.String("resource", c.name),
					logger.ErrorF(err),
				)
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if log != nil {
			log.Info(ctx, "resource closed", logger.String("resource", c.name))
		}
	}

	return firstErr
}
