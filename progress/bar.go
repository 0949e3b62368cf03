// SPDX-License-Identifier: MIT

// Package progress draws a single-line terminal progress bar.
//
// Bar is safe for concurrent Increment calls; redraws are serialized.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// lineWidth is the total width of label plus bar.
const lineWidth = 80

// Bar counts completed jobs and redraws itself on every Increment.
type Bar struct {
	Label   string
	Total   uint64
	current uint64

	mu  sync.Mutex
	out io.Writer
}

// New returns a Bar writing to out. A nil out yields a silent counter.
func New(out io.Writer, label string, total int) *Bar {
	if total < 0 {
		total = 0
	}

	return &Bar{Label: label, Total: uint64(total), out: out}
}

// Current returns the number of completed jobs.
func (bar *Bar) Current() uint64 { return atomic.LoadUint64(&bar.current) }

// Increment records one completed job and redraws.
func (bar *Bar) Increment() {
	atomic.AddUint64(&bar.current, 1)
	bar.ClearAndDisplay()
}

// ClearAndDisplay redraws the bar on the current line.
func (bar *Bar) ClearAndDisplay() {
	if bar.out == nil {
		return
	}
	bar.mu.Lock()
	defer bar.mu.Unlock()

	cur := bar.Current()
	if cur > bar.Total {
		cur = bar.Total
	}
	barWidth := uint64(0)
	if len(bar.Label) < lineWidth {
		barWidth = uint64(lineWidth - len(bar.Label))
	}
	ticks := barWidth
	if bar.Total > 0 {
		ticks = (barWidth * cur) / bar.Total
	}
	fmt.Fprintf(bar.out, "\r%s [%s%s] %d / %d",
		bar.Label, strings.Repeat("=", int(ticks)), strings.Repeat(" ", int(barWidth-ticks)), cur, bar.Total)
}

// Finish terminates the bar line.
func (bar *Bar) Finish() {
	if bar.out == nil {
		return
	}
	bar.mu.Lock()
	defer bar.mu.Unlock()
	fmt.Fprintln(bar.out)
}
