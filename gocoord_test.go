/*
 * gocoord_test.go, part of gocoord.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestUniqueSymbolsOrder(Te *testing.T) {
	S := twoWaters(Te) //H,O,H,O,H,H
	u := S.UniqueSymbols()
	if len(u) != 2 || u[0] != "H" || u[1] != "O" {
		Te.Errorf("unique symbols %v, want [H O] in first-appearance order", u)
	}
}

func TestIndicesOf(Te *testing.T) {
	S := twoWaters(Te)
	for _, spelling := range []string{"O", "o", "O"} {
		idx := S.IndicesOf(spelling)
		if len(idx) != 2 || idx[0] != 1 || idx[1] != 3 {
			Te.Errorf("IndicesOf(%q) = %v, want [1 3]", spelling, idx)
		}
	}
	if idx := S.IndicesOf("Zn"); len(idx) != 0 {
		Te.Errorf("IndicesOf(Zn) = %v on a zinc-free structure", idx)
	}
	i, err := S.FirstIndexOf("o")
	if err != nil || i != 1 {
		Te.Errorf("FirstIndexOf(o) = %d, %v", i, err)
	}
	if _, err = S.FirstIndexOf("Zn"); !IsNotFound(err) {
		Te.Errorf("FirstIndexOf on an absent element gave %v", err)
	}
}

func TestSomeAtoms(Te *testing.T) {
	S := twoWaters(Te)
	sub, err := S.SomeAtoms([]int{3, 4, 5})
	if err != nil {
		Te.Fatal(err)
	}
	if sub.Len() != 3 {
		Te.Fatalf("%d atoms in the extracted water", sub.Len())
	}
	if sub.Atom(0).Symbol != "O" || sub.Atom(0).Index() != 0 {
		Te.Errorf("extracted atom 0 is %q with index %d", sub.Atom(0).Symbol, sub.Atom(0).Index())
	}
	c := sub.Coord(1)
	if c[0] != 5.97 || c[1] != 0 || c[2] != 0 {
		Te.Errorf("extracted coordinate %v", c)
	}
	//mutating the extraction must not touch the parent
	sub.Atom(0).Tag = 42
	if S.Atom(3).Tag == 42 {
		Te.Error("SomeAtoms shares atom storage with its parent")
	}
	if _, err = S.SomeAtoms([]int{99}); err == nil {
		Te.Error("out-of-range extraction accepted")
	}
}

func TestCopy(Te *testing.T) {
	cell := mat.NewDense(3, 3, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	S, err := FromSymbols([]string{"Cu", "Cu"}, []float64{0, 0, 0, 1, 1, 1}, cell)
	if err != nil {
		Te.Fatal(err)
	}
	C := S.Copy()
	if C.Len() != S.Len() || !C.Periodic() {
		Te.Fatal("copy lost atoms or the cell")
	}
	C.Coords().Set(0, 0, 99)
	C.Cell().Set(0, 0, 99)
	C.Atom(0).Charge = 2
	if S.Coords().At(0, 0) == 99 || S.Cell().At(0, 0) == 99 || S.Atom(0).Charge == 2 {
		Te.Error("copy shares storage with the original")
	}
}

func TestStructureValidation(Te *testing.T) {
	atoms := []*Atom{{Symbol: "H"}, {Symbol: "H"}}
	if _, err := NewStructure(atoms, mat.NewDense(3, 3, nil), nil); err == nil {
		Te.Error("row-count mismatch accepted")
	}
	if _, err := NewStructure(atoms, nil, nil); err == nil {
		Te.Error("nil coordinates for a populated structure accepted")
	}
	if _, err := NewStructure(atoms, mat.NewDense(2, 3, nil), mat.NewDense(2, 2, nil)); err == nil {
		Te.Error("non-3x3 cell accepted")
	}
	if _, err := FromSymbols([]string{"H"}, []float64{0, 0}, nil); err == nil {
		Te.Error("short coordinate slice accepted")
	}
	empty, err := FromSymbols(nil, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if empty.Len() != 0 || empty.Periodic() {
		Te.Error("empty structure malformed")
	}
}

func TestNormalizeSymbol(Te *testing.T) {
	cases := map[string]string{"fe": "Fe", "FE": "Fe", "Fe": "Fe", "o": "O", "": ""}
	for in, want := range cases {
		if got := normalizeSymbol(in); got != want {
			Te.Errorf("normalizeSymbol(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAtomicData(Te *testing.T) {
	r, err := CovalentRadius("Cu")
	if err != nil || r != 1.32 {
		Te.Errorf("Cu covalent radius %v, %v", r, err)
	}
	if _, err = CovalentRadius("Xx"); !IsNotFound(err) {
		Te.Errorf("untabulated element gave %v", err)
	}
	v, err := VdwRadius("C")
	if err != nil || v <= 0 {
		Te.Errorf("C vdW radius %v, %v", v, err)
	}
	m, err := Mass("O")
	if err != nil || m < 15.9 || m > 16.1 {
		Te.Errorf("O mass %v, %v", m, err)
	}
}
