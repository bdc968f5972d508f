// Package jitter размывает интервалы повторов, чтобы переподключения
// разных экземпляров не приходились на один и тот же момент.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter — доля случайной добавки к интервалу (50%).
const DefaultJitter = 0.5

// Duration возвращает d, увеличенную на случайную долю до jitterFactor.
// Результат лежит в [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	return d + time.Duration(rand.Float64()*jitterFactor*float64(d))
}

// ExponentialBackoff возвращает базовый интервал, удвоенный attempt раз
// (attempt нумеруется с нуля), но не больше max, с добавленным джиттером.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt && backoff < max; i++ {
		backoff *= 2
	}
	if backoff > max {
		backoff = max
	}
	return Duration(backoff, jitterFactor)
}
