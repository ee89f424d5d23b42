/*
 * gocoord.go, part of gocoord.
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
	"strings"

	"gonum.org/v1/gonum/mat"
)

/*Note: some functions here panic instead of returning errors. Those are
 * "fundamental" accessors where an out-of-range index means the calling
 * program is wrong, not that the data is bad.*/

//Atom holds the per-atom data other than the coordinates, which live
//in a separate matrix owned by the Structure.
type Atom struct {
	Name   string
	Symbol string
	index  int
	Tag    int //room for anything a caller wants to keep per atom.
	Mass   float64
	Charge float64
}

//Index returns the position of the atom in its structure. It is only
//meaningful after the structure has filled it (NewStructure does).
func (A *Atom) Index() int {
	return A.index
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("attempted to copy a nil atom")
	}
	at := *A
	return &at
}

//Structure is an ordered set of atoms with their cartesian coordinates,
//in A, and, optionally, a periodic cell. The analytic functions in this
//package only read it; none of them moves atoms around.
type Structure struct {
	atoms  []*Atom
	coords *mat.Dense //n x 3
	cell   *mat.Dense //3 x 3, rows are the lattice vectors. nil if aperiodic.
}

//NewStructure builds a structure from atoms and an n x 3 coordinate
//matrix. cell can be nil for an aperiodic structure (a molecule), or a
//3 x 3 matrix whose rows are the lattice vectors. The atom indexes are
//(re)filled to match their order. A structure with no atoms at all is
//legal (and then coords may be nil); every analysis treats it as a valid
//empty input.
func NewStructure(atoms []*Atom, coords *mat.Dense, cell *mat.Dense) (*Structure, error) {
	if len(atoms) == 0 {
		return &Structure{atoms: []*Atom{}, cell: cell}, nil
	}
	if coords == nil {
		return nil, newError(KindOther, "NewStructure: nil coordinates")
	}
	r, c := coords.Dims()
	if c != 3 || r != len(atoms) {
		return nil, newError(KindOther, fmt.Sprintf("NewStructure: coordinates are %dx%d for %d atoms", r, c, len(atoms)))
	}
	if cell != nil {
		cr, cc := cell.Dims()
		if cr != 3 || cc != 3 {
			return nil, newError(KindOther, fmt.Sprintf("NewStructure: cell is %dx%d, must be 3x3", cr, cc))
		}
	}
	S := &Structure{atoms: atoms, coords: coords, cell: cell}
	S.fillIndexes()
	return S, nil
}

//FromSymbols builds a structure from element symbols and a flat,
//row-major coordinate slice (x0,y0,z0,x1,...). Masses are filled from the
//internal table when tabulated. It is mostly a convenience for tests and
//small scripted analyses.
func FromSymbols(symbols []string, xyz []float64, cell *mat.Dense) (*Structure, error) {
	if len(xyz) != 3*len(symbols) {
		return nil, newError(KindOther, fmt.Sprintf("FromSymbols: %d coordinates for %d atoms", len(xyz), len(symbols)))
	}
	atoms := make([]*Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = &Atom{Symbol: s, Name: s}
		atoms[i].Mass = symbolMass[s] //zero if not tabulated, which is fine here.
	}
	if len(atoms) == 0 {
		return NewStructure(atoms, nil, cell)
	}
	return NewStructure(atoms, mat.NewDense(len(symbols), 3, xyz), cell)
}

func (S *Structure) fillIndexes() {
	for i, at := range S.atoms {
		at.index = i
	}
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.atoms)
}

//Atom returns the atom at index i. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i < 0 || i >= S.Len() {
		panic("Structure: requested atom out of bounds")
	}
	return S.atoms[i]
}

//Coord returns a copy of the cartesian coordinates of atom i as a
//3-element slice. Panics if out of range.
func (S *Structure) Coord(i int) []float64 {
	if i < 0 || i >= S.Len() {
		panic("Structure: requested coordinate out of bounds")
	}
	return mat.Row(nil, i, S.coords)
}

//Coords returns the full n x 3 coordinate matrix. The returned matrix is
//the structure's own; callers that need to modify it should copy it first.
func (S *Structure) Coords() *mat.Dense {
	return S.coords
}

//Cell returns the 3 x 3 lattice matrix, or nil for an aperiodic structure.
func (S *Structure) Cell() *mat.Dense {
	return S.cell
}

//Periodic returns whether the structure has a cell.
func (S *Structure) Periodic() bool {
	return S.cell != nil
}

//Symbols returns the element symbols in atom order.
func (S *Structure) Symbols() []string {
	ret := make([]string, S.Len())
	for i, at := range S.atoms {
		ret[i] = at.Symbol
	}
	return ret
}

//UniqueSymbols returns the distinct element symbols present in the
//structure, in order of first appearance. The fixed order keeps
//element-pair enumeration deterministic.
func (S *Structure) UniqueSymbols() []string {
	ret := make([]string, 0, 8)
	for _, at := range S.atoms {
		if !isInString(ret, at.Symbol) {
			ret = append(ret, at.Symbol)
		}
	}
	return ret
}

//IndicesOf returns the indexes of every atom with the given element
//symbol. The symbol is capitalization-tolerant ("cu" finds Cu).
func (S *Structure) IndicesOf(symbol string) []int {
	want := normalizeSymbol(symbol)
	ret := make([]int, 0, 4)
	for i, at := range S.atoms {
		if at.Symbol == want {
			ret = append(ret, i)
		}
	}
	return ret
}

//FirstIndexOf returns the index of the first atom with the given symbol,
//or an error of kind KindNotFound if the symbol is absent. Analyses that
//assume a single atom of a species (the chelation center) use this and
//document that only the first match is taken.
func (S *Structure) FirstIndexOf(symbol string) (int, error) {
	idx := S.IndicesOf(symbol)
	if len(idx) == 0 {
		err := newError(KindNotFound, fmt.Sprintf("no %q atom in the structure", symbol))
		err.Decorate("FirstIndexOf")
		return -1, err
	}
	return idx[0], nil
}

//Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	atoms := make([]*Atom, S.Len())
	for i, at := range S.atoms {
		atoms[i] = at.Copy()
	}
	var coords *mat.Dense
	if S.coords != nil {
		coords = mat.DenseCopyOf(S.coords)
	}
	var cell *mat.Dense
	if S.cell != nil {
		cell = mat.DenseCopyOf(S.cell)
	}
	ret, err := NewStructure(atoms, coords, cell)
	if err != nil {
		panic("copying a valid structure cannot fail: " + err.Error())
	}
	return ret
}

//SomeAtoms returns a new structure with the atoms at the given indexes,
//in the given order, sharing no data with the original. The cell, if any,
//is carried over.
func (S *Structure) SomeAtoms(indexes []int) (*Structure, error) {
	atoms := make([]*Atom, 0, len(indexes))
	xyz := make([]float64, 0, 3*len(indexes))
	for k, i := range indexes {
		if i < 0 || i >= S.Len() {
			return nil, newError(KindOther, fmt.Sprintf("SomeAtoms: index number %d (%d) out of range", k, i))
		}
		atoms = append(atoms, S.atoms[i].Copy())
		xyz = append(xyz, S.Coord(i)...)
	}
	var cell *mat.Dense
	if S.cell != nil {
		cell = mat.DenseCopyOf(S.cell)
	}
	if len(atoms) == 0 {
		return NewStructure(atoms, nil, cell)
	}
	return NewStructure(atoms, mat.NewDense(len(atoms), 3, xyz), cell)
}

//normalizeSymbol capitalizes the first letter and lowercases the rest,
//so "fe", "FE" and "Fe" all mean iron.
func normalizeSymbol(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
