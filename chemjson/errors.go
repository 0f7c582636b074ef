/*
 * errors.go, part of gofluct.
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

package chemjson

import (
	"encoding/json"
	"strings"
)

//Error is an easily JSON-serializable error type, so programs reading
//chemjson output can also get the errors.
type Error struct {
	deco     []string
	err      error
	IsError  bool   //If this is false (no error) all the other fields will be at their zero-values.
	InInput  bool   //Was it while reading or decoding?
	InOutput bool   //Was it while encoding or writing?
	Function string //which go function gave the error
	Message  string //the error itself
}

//NewError takes an error and some additional info to create a json-marshal-able error.
//where is "input" or "output".
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error(), err: err, deco: []string{function}}
	switch where {
	case "input":
		jerr.InInput = true
	case "output":
		jerr.InOutput = true
	}
	return jerr
}

//Error implements the error interface
func (J *Error) Error() string {
	return "gofluct/chemjson: " + J.Function + ": " + J.Message
}

func (J *Error) Unwrap() error { return J.err }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

//Critical returns true, I/O errors are always critical.
func (J *Error) Critical() bool { return true }

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}
