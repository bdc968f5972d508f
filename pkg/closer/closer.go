// Package closer собирает функции освобождения ресурсов и закрывает их
// в порядке, обратном регистрации.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Func — функция закрытия одного ресурса.
type Func func(ctx context.Context) error

// Closer хранит зарегистрированные функции закрытия. Close можно
// вызывать из нескольких горутин, закрытие выполнится один раз.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	funcs         []Func
	forcedTimeout time.Duration
}

// NewCloser создаёт Closer. forcedTimeout отводится на принудительное
// закрытие ресурсов, не успевших закрыться до отмены контекста Close.
func NewCloser(forcedTimeout time.Duration) *Closer {
	if forcedTimeout <= 0 {
		forcedTimeout = 2 * time.Second
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	c.funcs = append(c.funcs, f)
	c.mu.Unlock()
}

// Close закрывает ресурсы в порядке LIFO. При отмене ctx оставшиеся
// функции запускаются параллельно с таймаутом forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			done := make(chan error, 1)
			go func(f Func) {
				done <- f(ctx)
			}(funcs[i])

			select {
			case closeErr := <-done:
				if closeErr != nil {
					errs = append(errs, closeErr)
				}
			case <-ctx.Done():
				errs = append(errs, fmt.Errorf("graceful shutdown interrupted, %d of %d left", i+1, len(funcs)))
				errs = append(errs, c.forcedClose(funcs[:i+1])...)
				err = errors.Join(errs...)
				return
			}
		}

		err = errors.Join(errs...)
	})

	return err
}

func (c *Closer) forcedClose(funcs []Func) []error {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, f := range funcs {
		wg.Add(1)
		go func(f Func) {
			defer wg.Done()
			if err := f(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("forced close: %w", err))
				mu.Unlock()
			}
		}(f)
	}
	wg.Wait()

	return errs
}
