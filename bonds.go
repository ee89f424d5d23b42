/*
 * bonds.go, part of gocoord.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//abnormalFloor is the lower limit, in A, below which a bond is considered
//abnormally short no matter how small the covalent radii involved are.
const abnormalFloor = 0.4

//BondSet collects the bonds between two element symbols in a structure:
//the canonical "A-B" label, the atom-index pairs (each with the lower
//index first) and the corresponding minimum-image distances, index-aligned
//with the pairs.
type BondSet struct {
	Label string
	Pairs [][2]int
	Dists []float64
}

//Stats returns the count, mean, minimum and maximum of the bond distances
//in the set. A nil or empty set gives all zeros.
func (bs *BondSet) Stats() (count int, mean, min, max float64) {
	if bs == nil || len(bs.Dists) == 0 {
		return 0, 0, 0, 0
	}
	return len(bs.Dists), stat.Mean(bs.Dists, nil), floats.Min(bs.Dists), floats.Max(bs.Dists)
}

//bondLabel returns the canonical label for an element pair. The order is
//the one given by the caller; the survey fixes it by always enumerating
//combinations in first-appearance order.
func bondLabel(A, B string) string {
	return A + "-" + B
}

//Bonds finds every A-B bond in the structure: pairs of atoms, one with
//symbol A and one with symbol B, whose minimum-image distance is within
//the covalent-radius bonding cutoff of the pair. A may equal B, in which
//case each unordered pair is still counted exactly once. It returns nil
//(and no error) when the two elements never co-occur within the cutoff:
//that is an empty result, not a failure. An element with no tabulated
//covalent radius is an error of kind KindNotFound.
//
//If rep is not nil, a one-row summary (label, count, mean, min, max) is
//written to it; this is presentation only and never affects the returned
//data.
func Bonds(S *Structure, A, B string, rep *Reporter) (*BondSet, error) {
	A = normalizeSymbol(A)
	B = normalizeSymbol(B)
	rA, err := CovalentRadius(A)
	if err != nil {
		return nil, errDecorate(err, "Bonds")
	}
	rB, err := CovalentRadius(B)
	if err != nil {
		return nil, errDecorate(err, "Bonds")
	}
	cutoff := rA + rB + bondTol
	bs := &BondSet{Label: bondLabel(A, B)}
	n := S.Len()
	for i := 0; i < n; i++ {
		si := S.Atom(i).Symbol
		if si != A && si != B {
			continue
		}
		for j := i + 1; j < n; j++ {
			sj := S.Atom(j).Symbol
			if !(si == A && sj == B) && !(si == B && sj == A) {
				continue
			}
			d := Distance(S, i, j, true)
			if d > 0 && d <= cutoff {
				bs.Pairs = append(bs.Pairs, [2]int{i, j})
				bs.Dists = append(bs.Dists, d)
			}
		}
	}
	if len(bs.Pairs) == 0 {
		return nil, nil
	}
	count, mean, min, max := bs.Stats()
	rep.BondRow(bs.Label, count, mean, min, max)
	return bs, nil
}

//AbnormalCutoff returns the threshold, in A, below which an A-B distance
//counts as an abnormally short bond: 0.75 times the sum of the two
//covalent radii, but never below 0.4 A.
func AbnormalCutoff(A, B string) (float64, error) {
	rA, err := CovalentRadius(normalizeSymbol(A))
	if err != nil {
		return 0, errDecorate(err, "AbnormalCutoff")
	}
	rB, err := CovalentRadius(normalizeSymbol(B))
	if err != nil {
		return 0, errDecorate(err, "AbnormalCutoff")
	}
	return math.Max(abnormalFloor, 0.75*(rA+rB)), nil
}

//AbnormalBond reports the abnormally short bonds found for one element
//pair in a survey: one record per flagged pair, carrying how many of that
//pair's distances fell below the realized cutoff.
type AbnormalBond struct {
	Label  string
	Count  int
	Cutoff float64
}

//AllBonds surveys every combination (with replacement) of the distinct
//element symbols in the structure, classifying the bonds of each pair.
//For k distinct elements that is k*(k+1)/2 combinations, so every
//unordered atom pair lands in exactly one of the returned sets. Pairs
//with no bonds contribute no set. With abnormal true, distances below the
//per-pair AbnormalCutoff are tallied into one AbnormalBond record per
//flagged element pair. Both result slices coming back empty is a success,
//not an error. rep, if not nil, receives the survey table.
func AllBonds(S *Structure, abnormal bool, rep *Reporter) ([]*BondSet, []AbnormalBond, error) {
	syms := S.UniqueSymbols()
	sets := make([]*BondSet, 0, len(syms)*(len(syms)+1)/2)
	var flagged []AbnormalBond
	if len(syms) > 0 {
		rep.BondTableHeader()
	}
	for i := 0; i < len(syms); i++ {
		for j := i; j < len(syms); j++ {
			bs, err := Bonds(S, syms[i], syms[j], rep)
			if err != nil {
				return nil, nil, errDecorate(err, "AllBonds")
			}
			if bs == nil {
				continue
			}
			sets = append(sets, bs)
			if !abnormal {
				continue
			}
			cutoff, err := AbnormalCutoff(syms[i], syms[j])
			if err != nil {
				return nil, nil, errDecorate(err, "AllBonds")
			}
			short := 0
			for _, d := range bs.Dists {
				if d < cutoff {
					short++
				}
			}
			if short > 0 {
				flagged = append(flagged, AbnormalBond{Label: bs.Label, Count: short, Cutoff: cutoff})
			}
		}
	}
	return sets, flagged, nil
}

//SearchAbnormalBonds surveys all bonds of the structure with abnormal
//checking on and returns whether the structure passes: true iff no
//abnormally short bond was found anywhere. When rep is not nil, a failing
//structure also gets a diagnostic summary (total count, the affected pair
//labels and their realized cutoffs).
func SearchAbnormalBonds(S *Structure, rep *Reporter) (bool, error) {
	_, flagged, err := AllBonds(S, true, rep)
	if err != nil {
		return false, errDecorate(err, "SearchAbnormalBonds")
	}
	if len(flagged) == 0 {
		return true, nil
	}
	total := 0
	for _, f := range flagged {
		total += f.Count
	}
	rep.Divider()
	rep.Printf("A total of %d abnormal bond lengths observed\n", total)
	for _, f := range flagged {
		rep.Printf("%s: %d below %.4f A\n", f.Label, f.Count, f.Cutoff)
	}
	rep.Divider()
	return false, nil
}
