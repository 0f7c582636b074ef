/*
 * kabsch.go, part of gofluct.
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

package align

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gofluct/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//MinPoints is the smallest number of points for which the superposition
//rotation is uniquely determined.
const MinPoints int = 3

//Centroid returns the geometric center (arithmetic mean) of the vectors in coords.
//It returns the zero vector for an empty set.
func Centroid(coords *v3.Matrix) r3.Vec {
	var c r3.Vec
	n := coords.NVecs()
	if n == 0 {
		return c
	}
	for i := 0; i < n; i++ {
		c = r3.Add(c, coords.Vec(i))
	}
	return r3.Scale(1/float64(n), c)
}

//Center returns a new matrix with the coordinates in coords displaced so their
//centroid lies at the origin, and the centroid that was subtracted.
func Center(coords *v3.Matrix) (*v3.Matrix, r3.Vec) {
	c := Centroid(coords)
	ret := v3.Zeros(coords.NVecs())
	ret.SubVec(coords, c)
	return ret, c
}

//Kabsch returns the rotation matrix R that minimizes the sum over i of |R*b_i - a_i|^2,
//where a_i are the rows of ref and b_i the rows of moving. Both sets must be already centered
//on their centroids, and have the same number (at least MinPoints) of vectors.
//The covariance matrix C=Bt*A is decomposed as U*S*Vt and R=V*D*Ut, where D=diag(1,1,d)
//and d corrects for a reflection, so R is always a proper rotation.
func Kabsch(ref, moving *v3.Matrix) (*v3.Matrix, error) {
	n := ref.NVecs()
	if n != moving.NVecs() {
		return nil, alignError(fmt.Sprintf("gofluct/align: Mismatched reference and moving sets: %d, %d vectors", n, moving.NVecs()), "Kabsch")
	}
	if n < MinPoints {
		return nil, alignError(fmt.Sprintf("gofluct/align: At least %d vectors are needed for a superposition, got %d", MinPoints, n), "Kabsch")
	}
	C := mat.NewDense(3, 3, nil)
	C.Mul(moving.T(), ref.Dense)
	var svd mat.SVD
	if ok := svd.Factorize(C, mat.SVDFull); !ok {
		return nil, alignError("gofluct/align: Singular value decomposition failed", "Kabsch")
	}
	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)
	//sign(det(V)*det(U)) is sign(det(C)) for a non-singular C, and it is still
	//well defined when C is rank deficient (e.g. every 3-atom residue).
	d := 1.0
	if v3.Det(&V)*v3.Det(&U) < 0 {
		d = -1
	}
	D := mat.NewDiagDense(3, []float64{1, 1, d})
	VD := mat.NewDense(3, 3, nil)
	VD.Mul(&V, D)
	R := v3.Zeros(3)
	R.Mul(VD, U.T())
	return R, nil
}

//Align superimposes moving on ref (both centered) and returns the optimal rotation together
//with the mean squared deviation between the rotated moving set and ref.
//The deviation is not square-rooted.
func Align(ref, moving *v3.Matrix) (*v3.Matrix, float64, error) {
	R, err := Kabsch(ref, moving)
	if err != nil {
		return nil, math.NaN(), err
	}
	msd, err := MSD(ref, moving, R)
	if err != nil {
		return nil, math.NaN(), err
	}
	return R, msd, nil
}

//Rotate returns R*p.
func Rotate(R *v3.Matrix, p r3.Vec) r3.Vec {
	return r3.Vec{
		X: R.At(0, 0)*p.X + R.At(0, 1)*p.Y + R.At(0, 2)*p.Z,
		Y: R.At(1, 0)*p.X + R.At(1, 1)*p.Y + R.At(1, 2)*p.Z,
		Z: R.At(2, 0)*p.X + R.At(2, 1)*p.Y + R.At(2, 2)*p.Z,
	}
}

//Deviations returns, for each vector i, R*b_i - a_i, where a_i and b_i are the
//ith rows of ref and moving, respectively.
func Deviations(ref, moving, R *v3.Matrix) ([]r3.Vec, error) {
	n := ref.NVecs()
	if n != moving.NVecs() {
		return nil, alignError(fmt.Sprintf("gofluct/align: Mismatched reference and moving sets: %d, %d vectors", n, moving.NVecs()), "Deviations")
	}
	ret := make([]r3.Vec, n)
	for i := range ret {
		ret[i] = r3.Sub(Rotate(R, moving.Vec(i)), ref.Vec(i))
	}
	return ret, nil
}

//MSD returns the mean over all vectors of |R*b_i - a_i|^2.
func MSD(ref, moving, R *v3.Matrix) (float64, error) {
	devs, err := Deviations(ref, moving, R)
	if err != nil {
		return math.NaN(), err
	}
	if len(devs) == 0 {
		return math.NaN(), alignError("gofluct/align: MSD of an empty set", "MSD")
	}
	var msd float64
	for _, v := range devs {
		msd += r3.Norm2(v)
	}
	return msd / float64(len(devs)), nil
}

//IsRotation returns true if R is orthonormal with determinant +1, within tol.
func IsRotation(R *v3.Matrix, tol float64) bool {
	if r, c := R.Dims(); r != 3 || c != 3 {
		return false
	}
	RtR := mat.NewDense(3, 3, nil)
	RtR.Mul(R.T(), R.Dense)
	if !mat.EqualApprox(RtR, mat.NewDiagDense(3, []float64{1, 1, 1}), tol) {
		return false
	}
	return math.Abs(v3.Det(R)-1) <= tol
}

//Error is the error type returned by this package.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical always returns true, an alignment can not be trusted after an error.
func (err *Error) Critical() bool { return true }

func alignError(msg, caller string) *Error {
	return &Error{message: msg, deco: []string{caller}}
}
