// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treedraw

import (
	"fmt"
	"io"
	"strings"
)

// default minimum horizontal gap between sibling subtrees
const defaultHSpace = 2

// Printer - layout engine for one family of tree nodes
//
// the zero value of the node handle type N marks an absent node, so
// for the usual pointer handles nil means "no child"
type Printer[N comparable] struct {
	label          func(N) string
	left           func(N) N
	right          func(N) N
	squareBranches bool
	lrAgnostic     bool
	hspace         int
}

// NewPrinter - create a layout engine from the three node accessors
//
// label must return the display text of a node; left and right must
// return the corresponding child or the zero N when there is none
func NewPrinter[N comparable](label func(N) string, left func(N) N, right func(N) N) *Printer[N] {
	return &Printer[N]{
		label:  label,
		left:   left,
		right:  right,
		hspace: defaultHSpace,
	}
}

// SetSquareBranches - draw +--+ box glyphs instead of / \ diagonals
func (p *Printer[N]) SetSquareBranches(value bool) {
	p.squareBranches = value
}

// SetLRAgnostic - draw a neutral vertical bar for a lone child
// instead of a left or right directed branch; only applies to the
// square glyph style
func (p *Printer[N]) SetLRAgnostic(value bool) {
	p.lrAgnostic = value
}

// SetHSpace - minimum number of columns between the rightmost column
// of a left subtree row and the leftmost column of the matching right
// subtree row
func (p *Printer[N]) SetHSpace(value int) {
	p.hspace = value
}

// Print - lay out the tree below root and write it to w
//
// every line is padded with spaces so the whole diagram forms a
// rectangle; each line is terminated by a newline; an absent root
// writes nothing
func (p *Printer[N]) Print(w io.Writer, root N) error {
	lines := p.buildLines(root)
	if 0 == len(lines) {
		return nil
	}
	minLeft := minLeftOffset(lines)
	maxRight := maxRightOffset(lines)
	for _, l := range lines {
		_, err := fmt.Fprintf(w, "%s%s%s\n",
			spaces(l.leftOffset-minLeft), l.line, spaces(maxRight-l.rightOffset))
		if nil != err {
			return err
		}
	}
	return nil
}

// Sprint - capture the diagram as a single string
func (p *Printer[N]) Sprint(root N) string {
	b := &strings.Builder{}
	_ = p.Print(b, root)
	return b.String()
}
