/*
 * handy.go, part of gocoord.
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

import "sort"

//FlattenUnique flattens a list of index lists into a single sorted slice
//with the duplicates removed. Sorting makes the output canonical, so two
//equal index sets always compare equal regardless of how they were
//accumulated.
func FlattenUnique(lists [][]int) []int {
	seen := make(map[int]bool)
	for _, l := range lists {
		for _, v := range l {
			seen[v] = true
		}
	}
	ret := make([]int, 0, len(seen))
	for v := range seen {
		ret = append(ret, v)
	}
	sort.Ints(ret)
	return ret
}

//isInInt returns whether test is in container.
func isInInt(container []int, test int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//Same as the previous, but with strings.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
