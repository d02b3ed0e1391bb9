// Package buffer stores the data of buffer-backed blocks in one linear
// byte slice.
//
// Every block registers its box with the Buffer, which reserves a
// contiguous range through a linear.Concatenation. Data moves in and out
// of a block with the hyperslab kernel, either one transfer at a time or
// as a parallel batch.
//
// Thread Safety:
//   - Register is serialized by the Buffer's lock.
//   - Read, Write and Fill may run concurrently as long as concurrent
//     writers target disjoint elements.
package buffer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/scigolib/region"
	"github.com/scigolib/region/hyperslab"
	"github.com/scigolib/region/internal/utils"
	"github.com/scigolib/region/linear"
)

// ErrUnknownBlock is returned for a linearization that was not issued by the Buffer.
var ErrUnknownBlock = errors.New("block not registered with buffer")

// Buffer holds the elements of every registered block back to back.
type Buffer[T region.Integer, D region.Dim] struct {
	mu       sync.RWMutex
	concat   *linear.Concatenation[T, D]
	data     []byte
	elemSize int
	cfg      config
}

// New creates an empty buffer for elements of elemSize bytes.
func New[T region.Integer, D region.Dim](elemSize int, opts ...Option) (*Buffer[T, D], error) {
	if elemSize <= 0 {
		return nil, fmt.Errorf("%w: %d", hyperslab.ErrElementSize, elemSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Buffer[T, D]{
		concat:   linear.NewConcatenation[T, D](),
		elemSize: elemSize,
		cfg:      cfg,
	}
	if cfg.capacity > 0 {
		n, err := utils.ByteSize(cfg.capacity, elemSize)
		if err != nil {
			return nil, utils.WrapError("initial capacity", err)
		}
		size, err := utils.ToInt(n)
		if err != nil {
			return nil, utils.WrapError("initial capacity", err)
		}
		b.data = make([]byte, 0, size)
	}
	return b, nil
}

// ElemSize returns the size of one element in bytes.
func (b *Buffer[T, D]) ElemSize() int { return b.elemSize }

// Register reserves storage for box and returns its linearization.
// The new storage is zeroed.
func (b *Buffer[T, D]) Register(box region.Box[T, D]) (linear.Linearization[T, D], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	lin, err := b.concat.PushBack(box)
	if err != nil {
		return linear.Linearization[T, D]{}, fmt.Errorf("register block: %w", err)
	}

	if err := b.grow(lin.End()); err != nil {
		// Drop the entry so the ledger matches storage.
		b.rollback()
		return linear.Linearization[T, D]{}, fmt.Errorf("register block: %w", err)
	}

	b.cfg.logger.Debug("registered block",
		slog.String("box", box.String()),
		slog.Int64("pos", lin.Pos()),
		slog.Int64("size", lin.Size()))
	return lin, nil
}

func (b *Buffer[T, D]) grow(elements int64) error {
	n, err := utils.ByteSize(elements, b.elemSize)
	if err != nil {
		return err
	}
	size, err := utils.ToInt(n)
	if err != nil {
		return err
	}
	if size <= cap(b.data) {
		b.data = b.data[:size]
		return nil
	}
	grown := make([]byte, size, max(size, 2*cap(b.data)))
	copy(grown, b.data)
	b.data = grown
	return nil
}

func (b *Buffer[T, D]) rollback() {
	entries := b.concat.Entries()
	b.concat = linear.NewConcatenation[T, D]()
	for _, e := range entries[:len(entries)-1] {
		_, _ = b.concat.PushBack(e.Box())
	}
}

// block returns the storage and dense layout of a registered block.
// The caller must hold b.mu.
func (b *Buffer[T, D]) block(lin linear.Linearization[T, D]) ([]byte, hyperslab.Layout[T, D], error) {
	entries := b.concat.Len()
	i := sort.Search(entries, func(i int) bool { return b.concat.At(i).Pos() >= lin.Pos() })
	if i == entries || b.concat.At(i) != lin {
		return nil, hyperslab.Layout[T, D]{}, fmt.Errorf("%w: %v", ErrUnknownBlock, lin)
	}

	layout, err := hyperslab.DenseLayout(lin.Box(), b.elemSize)
	if err != nil {
		return nil, hyperslab.Layout[T, D]{}, err
	}
	e := int64(b.elemSize)
	return b.data[lin.Pos()*e : lin.End()*e], layout, nil
}

// Write copies sub from src, addressed through srcLayout, into the block.
func (b *Buffer[T, D]) Write(lin linear.Linearization[T, D], sub region.Box[T, D],
	src []byte, srcLayout hyperslab.Layout[T, D]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, layout, err := b.block(lin)
	if err != nil {
		return err
	}
	if err := hyperslab.Copy(data, layout, src, srcLayout, sub, b.elemSize); err != nil {
		return fmt.Errorf("write %v: %w", sub, err)
	}
	return nil
}

// Read copies sub from the block into dst, addressed through dstLayout.
func (b *Buffer[T, D]) Read(lin linear.Linearization[T, D], sub region.Box[T, D],
	dst []byte, dstLayout hyperslab.Layout[T, D]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, layout, err := b.block(lin)
	if err != nil {
		return err
	}
	if err := hyperslab.Copy(dst, dstLayout, data, layout, sub, b.elemSize); err != nil {
		return fmt.Errorf("read %v: %w", sub, err)
	}
	return nil
}

// Fill sets every element of sub in the block to pattern, which must be
// exactly one element long.
func (b *Buffer[T, D]) Fill(lin linear.Linearization[T, D], sub region.Box[T, D], pattern []byte) error {
	if len(pattern) != b.elemSize {
		return fmt.Errorf("%w: pattern has %d bytes, element has %d",
			hyperslab.ErrElementSize, len(pattern), b.elemSize)
	}
	if sub.Empty() {
		return nil
	}

	count, err := sub.CheckedSize()
	if err != nil {
		return utils.WrapSubjectError("fill", sub, err)
	}
	n, err := utils.ByteSize(count, b.elemSize)
	if err != nil {
		return utils.WrapSubjectError("fill", sub, err)
	}
	size, err := utils.ToInt(n)
	if err != nil {
		return utils.WrapSubjectError("fill", sub, err)
	}

	scratch := utils.GetBuffer(size)
	defer utils.ReleaseBuffer(scratch)
	copy(scratch, pattern)
	for filled := len(pattern); filled < size; filled *= 2 {
		copy(scratch[filled:], scratch[:filled])
	}

	layout, err := hyperslab.DenseLayout(sub, b.elemSize)
	if err != nil {
		return err
	}
	return b.Write(lin, sub, scratch, layout)
}

// Transfer describes one block transfer of a batch.
type Transfer[T region.Integer, D region.Dim] struct {
	Block  linear.Linearization[T, D]
	Sub    region.Box[T, D]
	Data   []byte
	Layout hyperslab.Layout[T, D]
}

// Scatter writes every transfer's Data into its block. Transfers run
// concurrently, bounded by WithParallelism; the first error cancels the
// rest and is returned.
func (b *Buffer[T, D]) Scatter(ctx context.Context, transfers []Transfer[T, D]) error {
	return b.batch(ctx, "scatter", transfers, func(t Transfer[T, D]) error {
		return b.Write(t.Block, t.Sub, t.Data, t.Layout)
	})
}

// Gather reads every transfer's block into its Data. Transfers run
// concurrently, bounded by WithParallelism.
func (b *Buffer[T, D]) Gather(ctx context.Context, transfers []Transfer[T, D]) error {
	return b.batch(ctx, "gather", transfers, func(t Transfer[T, D]) error {
		return b.Read(t.Block, t.Sub, t.Data, t.Layout)
	})
}

func (b *Buffer[T, D]) batch(ctx context.Context, op string, transfers []Transfer[T, D],
	run func(Transfer[T, D]) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.parallelism)

	for i, t := range transfers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := run(t); err != nil {
				return fmt.Errorf("%s transfer %d: %w", op, i, err)
			}
			return nil
		})
	}

	err := g.Wait()
	b.cfg.logger.Debug("transfer batch",
		slog.String("op", op),
		slog.Int("transfers", len(transfers)),
		slog.Any("error", err))
	return err
}

// Bytes returns a copy of the whole storage.
func (b *Buffer[T, D]) Bytes() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]byte(nil), b.data...)
}

// Len returns the number of reserved elements.
func (b *Buffer[T, D]) Len() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.concat.Next()
}

// Linearizations returns the registered blocks in registration order.
func (b *Buffer[T, D]) Linearizations() []linear.Linearization[T, D] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.concat.Entries()
}
