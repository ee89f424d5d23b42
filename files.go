/*
 * files.go, part of gocoord.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"gonum.org/v1/gonum/mat"
)

//XYZRead reads the first frame of an XYZ file into a structure. Files
//ending in ".gz" are decompressed transparently. If the comment line
//carries an extended-XYZ Lattice="ax ay az bx by bz cx cy cz" entry the
//structure is built periodic with those lattice vectors as cell rows;
//otherwise it is aperiodic. Masses are filled from the internal table
//where tabulated.
func XYZRead(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("XYZRead: %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	}
	S, err := xyzParse(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("XYZRead: %s: %w", name, err)
	}
	return S, nil
}

func xyzParse(r *bufio.Reader) (*Structure, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("ill-formatted XYZ: bad atom count line %q", strings.TrimSpace(line))
	}
	comment, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	cell, err := parseLattice(comment)
	if err != nil {
		return nil, err
	}
	symbols := make([]string, 0, natoms)
	xyz := make([]float64, 0, 3*natoms)
	for i := 0; i < natoms; i++ {
		line, err = r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("ill-formatted XYZ: atom line %d has %d fields", i, len(fields))
		}
		symbols = append(symbols, normalizeSymbol(fields[0]))
		for k := 1; k <= 3; k++ {
			v, err := strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, fmt.Errorf("ill-formatted XYZ: atom line %d: %w", i, err)
			}
			xyz = append(xyz, v)
		}
	}
	return FromSymbols(symbols, xyz, cell)
}

//parseLattice extracts an extended-XYZ lattice from a comment line.
//Returns nil (and no error) when no Lattice entry is present.
func parseLattice(comment string) (*mat.Dense, error) {
	const key = `Lattice="`
	start := strings.Index(comment, key)
	if start < 0 {
		return nil, nil
	}
	rest := comment[start+len(key):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return nil, fmt.Errorf("unterminated Lattice entry in XYZ comment")
	}
	fields := strings.Fields(rest[:end])
	if len(fields) != 9 {
		return nil, fmt.Errorf("Lattice entry has %d values, want 9", len(fields))
	}
	vals := make([]float64, 9)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad Lattice value %q: %w", f, err)
		}
		vals[i] = v
	}
	return mat.NewDense(3, 3, vals), nil
}

//XYZWrite writes the structure as an XYZ file to name, overwriting any
//existing file. Periodic structures get an extended-XYZ Lattice entry in
//the comment line. A ".gz" suffix turns on gzip compression.
func XYZWrite(name string, S *Structure) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(name, ".gz") {
		gz = gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}
	if err := xyzPrint(w, S); err != nil {
		return fmt.Errorf("XYZWrite: %s: %w", name, err)
	}
	if gz != nil {
		return gz.Close()
	}
	return nil
}

func xyzPrint(w io.Writer, S *Structure) error {
	if _, err := fmt.Fprintf(w, "%d\n", S.Len()); err != nil {
		return err
	}
	comment := ""
	if S.Periodic() {
		c := S.Cell()
		comment = `Lattice="`
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if i+j > 0 {
					comment += " "
				}
				comment += strconv.FormatFloat(c.At(i, j), 'f', -1, 64)
			}
		}
		comment += `"`
	}
	if _, err := fmt.Fprintf(w, "%s\n", comment); err != nil {
		return err
	}
	for i := 0; i < S.Len(); i++ {
		c := S.Coord(i)
		if _, err := fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f\n", S.Atom(i).Symbol, c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return nil
}
