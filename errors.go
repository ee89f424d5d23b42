/*
 * errors.go, part of gocoord.
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

import "strings"

//Kind classifies the failure conditions of the library so callers
//can branch on them without matching message strings.
type Kind int

const (
	//KindOther is any condition not covered by the more specific kinds.
	KindOther Kind = iota
	//KindNotFound signals that a requested element symbol, atom or site
	//is absent from the structure or from the data tables.
	KindNotFound
	//KindUnrecognizedLattice signals an unknown lattice-name alias for
	//a bulk coordination maximum.
	KindUnrecognizedLattice
	//KindInputMismatch signals two structures whose atom counts (or other
	//required parity) do not match.
	KindInputMismatch
)

//Error is the error type returned by the library. It carries the chain of
//functions the error crossed, so the trace reads outermost-first.
type Error struct {
	msg  string
	kind Kind
	deco []string
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return strings.Join(err.deco, "/") + ": " + err.msg
}

//Kind returns the condition kind of the error.
func (err *Error) Kind() Kind {
	return err.kind
}

//Decorate prepends info to the trace of callers of the error,
//and returns the current trace.
func (err *Error) Decorate(info string) []string {
	if info != "" {
		err.deco = append([]string{info}, err.deco...)
	}
	return err.deco
}

func newError(kind Kind, msg string) *Error {
	return &Error{msg: msg, kind: kind}
}

//errDecorate adds the caller info to err if err is an *Error, and
//returns it. Errors of other types are returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(*Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//IsNotFound returns whether err is a *Error of kind KindNotFound.
func IsNotFound(err error) bool {
	err2, ok := err.(*Error)
	return ok && err2.kind == KindNotFound
}

//IsUnrecognizedLattice returns whether err is a *Error of kind
//KindUnrecognizedLattice.
func IsUnrecognizedLattice(err error) bool {
	err2, ok := err.(*Error)
	return ok && err2.kind == KindUnrecognizedLattice
}

//IsInputMismatch returns whether err is a *Error of kind KindInputMismatch.
func IsInputMismatch(err error) bool {
	err2, ok := err.(*Error)
	return ok && err2.kind == KindInputMismatch
}
