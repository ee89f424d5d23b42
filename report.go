/*
 * report.go, part of gocoord.
 *
 *
 * Copyright 2024 The gocoord developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package coord

import (
	"fmt"
	"io"
	"strings"
)

//Reporter is the optional presentation sink for the analyses: a
//line-oriented writer of pre-formatted table rows. A nil *Reporter is
//valid everywhere and means "silent". Write errors are deliberately
//swallowed: a broken sink must never change an analytic result, and
//callers must not rely on the printed output for control flow.
type Reporter struct {
	w io.Writer
}

//NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

//Printf writes a formatted line to the sink.
func (r *Reporter) Printf(format string, args ...interface{}) {
	if r == nil || r.w == nil {
		return
	}
	fmt.Fprintf(r.w, format, args...) //errors ignored on purpose
}

//Divider writes a horizontal rule.
func (r *Reporter) Divider() {
	r.Printf("%s\n", strings.Repeat("-", 48))
}

//BondTableHeader writes the heading for a bond survey table.
func (r *Reporter) BondTableHeader() {
	r.Divider()
	r.Printf("%-8s%8s%12s%12s%12s\n", "Bond", "Count", "Average", "Minimum", "Maximum")
	r.Divider()
}

//BondRow writes one row of a bond survey table.
func (r *Reporter) BondRow(label string, count int, mean, min, max float64) {
	r.Printf("%-8s%8d%12.6f%12.6f%12.6f\n", label, count, mean, min, max)
}
