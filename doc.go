/*
 * doc.go, part of gocoord.
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

/*
Package coord analyzes the structural chemistry of atomic structures:
molecules, periodic crystals and surface slabs.

It extracts pairwise bond distances and classifies them by element pair,
flags abnormally short bonds from covalent-radius heuristics, decomposes a
structure into the ligand molecules coordinating a metal center (with
their formulas and denticities), and computes generalized coordination
numbers for surface sites. Distances in periodic structures follow the
minimum-image convention throughout.

Every analysis recomputes what it needs from the structure it is given and
keeps no state between calls, so independent analyses can safely run in
parallel from the caller's side.

Structures are built in memory with NewStructure or FromSymbols, or read
from (possibly gzip-compressed, possibly extended) XYZ files with XYZRead.
Verbose table output goes to an optional *Reporter; a nil Reporter is
silent, and nothing in the returned data ever depends on it.

The subpackage coordplot renders distance distributions; the subpackage
hpc builds run commands for electronic-structure jobs from an explicit
configuration object.
*/
package coord
