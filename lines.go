// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treedraw

import (
	"strings"
)

// one rendered row of a subtree diagram
//
// the offsets are the leftmost and rightmost columns the text covers,
// measured from an implicit centre column at that row; they only have
// meaning within one call of buildLines and its caller
type treeLine struct {
	line        string
	leftOffset  int
	rightOffset int
}

// a run of n spaces, empty for n <= 0
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// leftmost column used by any row
func minLeftOffset(lines []treeLine) int {
	if 0 == len(lines) {
		return 0
	}
	m := lines[0].leftOffset
	for _, l := range lines {
		if l.leftOffset < m {
			m = l.leftOffset
		}
	}
	return m
}

// rightmost column used by any row
func maxRightOffset(lines []treeLine) int {
	if 0 == len(lines) {
		return 0
	}
	m := lines[0].rightOffset
	for _, l := range lines {
		if l.rightOffset > m {
			m = l.rightOffset
		}
	}
	return m
}

// internal layout routine: children first, then the label row, the
// branch glyph rows and the row-by-row join of the two child blocks
func (p *Printer[N]) buildLines(root N) []treeLine {
	var absent N
	if root == absent {
		return nil
	}

	rootLabel := p.label(root)
	leftLines := p.buildLines(p.left(root))
	rightLines := p.buildLines(p.right(root))

	minCount := len(leftLines)
	maxCount := len(rightLines)
	if maxCount < minCount {
		minCount, maxCount = maxCount, minCount
	}

	// widest gap over the rows present on both sides; rows present
	// on only one side cannot cause an overlap
	maxRootSpacing := 0
	for i := 0; i < minCount; i += 1 {
		spacing := leftLines[i].rightOffset - rightLines[i].leftOffset
		if spacing > maxRootSpacing {
			maxRootSpacing = spacing
		}
	}

	// branch glyphs are symmetric, so the total spacing must be odd
	// for the parent to centre exactly
	rootSpacing := maxRootSpacing + p.hspace
	if 0 == rootSpacing%2 {
		rootSpacing += 1
	}

	allLines := make([]treeLine, 0, maxCount+2)
	allLines = append(allLines, treeLine{
		line:        rootLabel,
		leftOffset:  -(len(rootLabel) - 1) / 2,
		rightOffset: len(rootLabel) / 2,
	})

	// horizontal shift applied to every row of the child blocks so
	// each block sits directly below its branch glyph
	leftTreeAdjust := 0
	rightTreeAdjust := 0

	switch {
	case 0 == len(leftLines) && 0 == len(rightLines):
		// leaf: no branch row

	case 0 == len(leftLines):
		if p.squareBranches {
			if p.lrAgnostic {
				allLines = append(allLines, treeLine{"|", 0, 0})
			} else {
				allLines = append(allLines, treeLine{"+--+", 0, 3})
				rightTreeAdjust = 3
			}
		} else {
			allLines = append(allLines, treeLine{`\`, 1, 1})
			rightTreeAdjust = 2
		}

	case 0 == len(rightLines):
		if p.squareBranches {
			if p.lrAgnostic {
				allLines = append(allLines, treeLine{"|", 0, 0})
			} else {
				allLines = append(allLines, treeLine{"+--+", -3, 0})
				leftTreeAdjust = -3
			}
		} else {
			allLines = append(allLines, treeLine{"/", -1, -1})
			leftTreeAdjust = -2
		}

	default:
		if p.squareBranches {
			adjust := rootSpacing/2 + 1
			horizontal := strings.Repeat("-", rootSpacing/2)
			branch := "+" + horizontal + "+" + horizontal + "+"
			allLines = append(allLines, treeLine{branch, -adjust, adjust})
			leftTreeAdjust = -adjust
			rightTreeAdjust = adjust
		} else if 1 == rootSpacing {
			allLines = append(allLines, treeLine{`/ \`, -1, 1})
			leftTreeAdjust = -2
			rightTreeAdjust = 2
		} else {
			// one /   \ row per two columns of spacing
			for i := 1; i < rootSpacing; i += 2 {
				branches := "/" + spaces(i) + `\`
				allLines = append(allLines, treeLine{branches, -(i + 1) / 2, (i + 1) / 2})
			}
			leftTreeAdjust = -(rootSpacing/2 + 1)
			rightTreeAdjust = rootSpacing/2 + 1
		}
	}

	for i := 0; i < maxCount; i += 1 {
		switch {
		case i >= len(leftLines): // rows of a taller right subtree
			r := rightLines[i]
			r.leftOffset += rightTreeAdjust
			r.rightOffset += rightTreeAdjust
			allLines = append(allLines, r)

		case i >= len(rightLines): // rows of a taller left subtree
			l := leftLines[i]
			l.leftOffset += leftTreeAdjust
			l.rightOffset += leftTreeAdjust
			allLines = append(allLines, l)

		default: // rows present on both sides
			l := leftLines[i]
			r := rightLines[i]
			adjustedRootSpacing := rootSpacing
			if 1 == rootSpacing {
				if p.squareBranches {
					adjustedRootSpacing = 1
				} else {
					adjustedRootSpacing = 3
				}
			}
			allLines = append(allLines, treeLine{
				line:        l.line + spaces(adjustedRootSpacing-l.rightOffset+r.leftOffset) + r.line,
				leftOffset:  l.leftOffset + leftTreeAdjust,
				rightOffset: r.rightOffset + rightTreeAdjust,
			})
		}
	}

	return allLines
}
