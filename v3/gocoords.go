/*
 * gocoords.go, part of gofluct.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//FromVecs returns a new Matrix with one row per vector in vecs.
func FromVecs(vecs []r3.Vec) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F
}

//METHODS

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns the ith vector of F as an r3.Vec.
func (F *Matrix) Vec(i int) r3.Vec {
	row := F.RawRowView(i)
	return r3.Vec{X: row[0], Y: row[1], Z: row[2]}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	row := F.RawRowView(i)
	row[0] = v.X
	row[1] = v.Y
	row[2] = v.Z
}

//AddVec adds a vector to each vector of the matrix A, putting the result on the receiver.
//Panics if matrices are mismatched.
func (F *Matrix) AddVec(A *Matrix, vec r3.Vec) {
	ar := A.NVecs()
	if ar != F.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Add(A.Vec(i), vec))
	}
}

//SubVec subtracts the vector to each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched. A and F
//can be the same matrix.
func (F *Matrix) SubVec(A *Matrix, vec r3.Vec) {
	F.AddVec(A, r3.Scale(-1, vec))
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	if c != 3 || r == 0 {
		return fmt.Sprintf("%v", mat.Formatted(F.Dense))
	}
	v := make([]string, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v[i] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
	}
	return "\n[" + strings.TrimPrefix(strings.Join(v, "\n"), " ") + " ]"
}
