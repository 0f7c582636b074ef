/*
 * gonum.go, part of gofluct.
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

//gonum.go contains what is needed for handling the gonum/mat types and facilities.
//All the *Vec functions operate on row vectors, since the underlying Dense is row-major.

package v3

import (
	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some functions in
//the library reflect this.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//Mul wraps mat.Dense.Mul to take care of the case when one of the
//arguments is also the receiver. Since the receiver is a Matrix,
//the gonum function would check A against F.Dense and would not know
//that internally F.Dense==A.Dense, hence the need for this function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if a, ok := A.(*Matrix); ok {
		A = a.Dense
	}
	if b, ok := B.(*Matrix); ok {
		B = b.Dense
	}
	F.Dense.Mul(A, B)
}

//Det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func Det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("gofluct/v3: A v3.Matrix should have 3 columns")
	ErrShape        = PanicMsg("gofluct/v3: Dimension mismatch")
	ErrDeterminant  = PanicMsg("gofluct/v3: Determinants are only available for 3x3 matrices")
)
