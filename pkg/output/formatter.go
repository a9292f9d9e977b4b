// Package output renders line counts as aligned text.
//
// Counts are right-justified in a column whose width is derived from the
// grand total (its digit count plus two), so a column of per-file counts
// lines up with the trailing "Total" row.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/otuschhoff/linecount"
)

// columnPadding is added to the digit count of the total.
const columnPadding = 2

// totalLabel names the summary row.
const totalLabel = "Total"

// Formatter renders Results as one row per file plus an optional total row.
type Formatter struct {
	showTotal bool // Append the "Total" row
}

// NewFormatter creates a new Formatter. showTotal controls whether the
// summary row is printed after the per-file rows.
func NewFormatter(showTotal bool) *Formatter {
	return &Formatter{showTotal: showTotal}
}

// Format converts results to output text, one '\n'-terminated line per row.
//
// Each row is the count right-justified to ColumnWidth(results.Total),
// a space and the file name. A count wider than the column is printed in
// full.
func (f *Formatter) Format(results *linecount.Results) string {
	width := ColumnWidth(results.Total)

	var sb strings.Builder
	for _, r := range results.Entries {
		sb.WriteString(row(r.Lines, r.Name, width))
	}
	if f.showTotal {
		sb.WriteString(row(results.Total, totalLabel, width))
	}
	return sb.String()
}

// ColumnWidth returns the width of the count column for the given total.
// Zero is treated as a single digit, giving a width of 3.
func ColumnWidth(total int) int {
	return len(strconv.Itoa(total)) + columnPadding
}

// row formats a single right-justified count followed by its label.
func row(count int, label string, width int) string {
	return fmt.Sprintf("%s %s\n", text.AlignRight.Apply(strconv.Itoa(count), width), label)
}

// Banner returns the usage and copyright text printed when no files are
// given. invocation is the path the program was started as; only its last
// '/'-separated element is shown.
func Banner(invocation, version string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Line Counter v: %s\n", version)
	fmt.Fprintf(&sb, "Usage: %s [filename(s)]\n\n", programName(invocation))
	sb.WriteString("LineCounter Copyright (C) 2025 Rob Teeple\n")
	sb.WriteString("Released under GPL-3.0-only or GPL-3.0-or-later <https://www.gnu.org/licenses/gpl-3.0.html>\n")
	sb.WriteString("Source code: <https://github.com/triggnus/LineCounter>\n")
	return sb.String()
}

// programName returns the text after the last '/' in invocation.
func programName(invocation string) string {
	return invocation[strings.LastIndex(invocation, "/")+1:]
}
