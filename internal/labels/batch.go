package labels

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchSize is the number of requests dispatched concurrently.
	DefaultBatchSize = 5
	// DefaultBatchDelay is the pause between two consecutive batches.
	DefaultBatchDelay = 100 * time.Millisecond
)

// Batcher splits work into fixed-size groups. Items of a group run
// concurrently; groups run one after another with Delay in between.
type Batcher struct {
	Size  int
	Delay time.Duration

	// sleep is replaced in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// NewBatcher returns a Batcher with the default size and delay.
func NewBatcher() *Batcher {
	return &Batcher{
		Size:  DefaultBatchSize,
		Delay: DefaultBatchDelay,
	}
}

// Batches returns how many groups n items are split into.
func (b *Batcher) Batches(n int) int {
	size := b.size()
	return (n + size - 1) / size
}

func (b *Batcher) size() int {
	if b.Size <= 0 {
		return DefaultBatchSize
	}
	return b.Size
}

func (b *Batcher) wait(ctx context.Context) error {
	if b.sleep != nil {
		return b.sleep(ctx, b.Delay)
	}
	return sleepContext(ctx, b.Delay)
}

// Dispatch calls fn for every item, batch by batch. Every call of a batch is
// awaited before the batch's error is inspected; the first error stops the
// remaining batches and is returned.
func Dispatch[T any](ctx context.Context, b *Batcher, items []T, fn func(context.Context, T) error) error {
	size := b.size()

	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}

		var g errgroup.Group
		for _, item := range items[start:end] {
			item := item
			g.Go(func() error {
				return fn(ctx, item)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if end < len(items) {
			if err := b.wait(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
