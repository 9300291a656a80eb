package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFn struct {
	name string
	fn   func(ctx context.Context) error
}

// Closer runs registered shutdown functions in reverse registration order.
type Closer struct {
	mu     sync.Mutex
	fns    []namedFn
	once   sync.Once
	logger Logger
}

var global = New()

func New() *Closer { return &Closer{} }

func SetLogger(l Logger)                                    { global.SetLogger(l) }
func AddNamed(name string, fn func(ctx context.Context) error) { global.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                      { return global.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

func (c *Closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	c.fns = append(c.fns, namedFn{name: name, fn: fn})
	c.mu.Unlock()
}

// CloseAll is idempotent; only the first call runs the functions.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		fns := c.fns
		c.fns = nil
		l := c.logger
		c.mu.Unlock()

		errs := make([]error, 0)
		for i := len(fns) - 1; i >= 0; i-- {
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", fns[i].name, err))
				continue
			}

			if err := fns[i].fn(ctx); err != nil {
				if l != nil {
					l.Error(ctx, "failed to close", zap.String("name", fns[i].name), zap.Error(err))
				}
				errs = append(errs, fmt.Errorf("close %s: %w", fns[i].name, err))
				continue
			}

			if l != nil {
				l.Info(ctx, "closed", zap.String("name", fns[i].name))
			}
		}

		result = errors.Join(errs...)
	})

	return result
}
