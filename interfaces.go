/*
 * interfaces.go, part of gofluct.
 *
 * Copyright 2026 The gofluct authors.
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

package fluct

import (
	"errors"
	"fmt"
)

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else. If passed an empty string, Decorate just returns the
// current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// The kinds of malformed input that make an analysis impossible. Errors returned by
// this package wrap one of these, so they can be checked with errors.Is.
var (
	ErrSingleFrame      = errors.New("at least 2 frames are needed")
	ErrEmpty            = errors.New("no residues to analyze")
	ErrDuplicateResidue = errors.New("duplicated residue")
	ErrNegativeID       = errors.New("negative residue or atom identifier")
	ErrSharedAtom       = errors.New("atom listed more than once")
	ErrSmallResidue     = errors.New("residue has fewer than 3 atoms")
	ErrMissingAtom      = errors.New("atom missing from frame")
	ErrMismatchedFrames = errors.New("frames do not share the same atoms")
	ErrFrameRange       = errors.New("frame index out of range")
	ErrInconsistent     = errors.New("summaries don't match the deviation series")
	ErrAlignment        = errors.New("superposition failed")
)

//DeviationError is the error type returned by the analysis functions. It fulfills Error and
//unwraps to one of the ErrXxx kinds above.
type DeviationError struct {
	kind     error
	message  string
	deco     []string
	critical bool
}

func (err *DeviationError) Error() string {
	return fmt.Sprintf("gofluct: %s: %s", err.kind, err.message)
}

func (err *DeviationError) Unwrap() error { return err.kind }

//Decorate adds new information to the error.
func (err *DeviationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err *DeviationError) Critical() bool { return err.critical }

func newError(kind error, caller, format string, args ...interface{}) *DeviationError {
	return &DeviationError{kind: kind, message: fmt.Sprintf(format, args...), deco: []string{caller}, critical: true}
}

//errDecorate decorates err with the caller's name, if err implements Error,
//and returns it.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
