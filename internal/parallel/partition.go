// Package parallel splits convolution output into disjoint row bands and
// runs them with per-call fork/join.
//
// There is no persistent pool: goroutines live for one ForkJoin call.
// Bands never overlap, so workers writing to their own rows of a shared
// output slice need no locking.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

// RowRange is the half-open row interval [Start, End).
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	return max(r.End-r.Start, 0)
}

// Empty reports whether the range holds no rows.
func (r RowRange) Empty() bool {
	return r.End <= r.Start
}

// SplitRows divides [0, height) into min(max(workers, 1), max(height, 1))
// contiguous, non-overlapping ranges in ascending order. Workers beyond
// height are dropped, so any worker count is accepted.
//
// Rows are spread as evenly as possible: the first height%n ranges get one
// extra row. A zero height yields the single empty range [0, 0).
func SplitRows(height, workers int) []RowRange {
	height = max(height, 0)
	n := min(max(workers, 1), max(height, 1))

	ranges := make([]RowRange, n)
	base, extra := height/n, height%n
	start := 0
	for i := range ranges {
		rows := base
		if i < extra {
			rows++
		}
		ranges[i] = RowRange{Start: start, End: start + rows}
		start += rows
	}
	return ranges
}

// ForkJoin calls fn once for every non-empty range and returns when all
// calls have finished. Empty ranges are skipped. With a single non-empty
// range fn runs on the calling goroutine.
//
// The first non-nil error returned by fn is reported after every call has
// finished; other bands are not interrupted.
//
// fn must only write memory owned by its range.
func ForkJoin(ranges []RowRange, fn func(r RowRange) error) error {
	active := ranges[:0:0]
	for _, r := range ranges {
		if !r.Empty() {
			active = append(active, r)
		}
	}

	switch len(active) {
	case 0:
		return nil
	case 1:
		return fn(active[0])
	}

	var g errgroup.Group
	for _, r := range active {
		g.Go(func() error {
			return fn(r)
		})
	}
	return g.Wait()
}

// Active counts the non-empty ranges.
func Active(ranges []RowRange) int {
	n := 0
	for _, r := range ranges {
		if !r.Empty() {
			n++
		}
	}
	return n
}
