/*
 * trajectory_test.go, part of gofluct.
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
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestValidate(Te *testing.T) {
	cases := []struct {
		name string
		edit func(T *Trajectory)
		kind error
	}{
		{"single frame", func(T *Trajectory) { T.Frames = T.Frames[:1] }, ErrSingleFrame},
		{"no residues", func(T *Trajectory) { T.Residues = nil }, ErrEmpty},
		{"duplicate residue", func(T *Trajectory) { T.Residues[1].ID = 2 }, ErrDuplicateResidue},
		{"negative residue", func(T *Trajectory) { T.Residues[0].ID = -2 }, ErrNegativeID},
		{"shared atom", func(T *Trajectory) { T.Residues[0].Atoms = append(T.Residues[0].Atoms, 4) }, ErrSharedAtom},
		{"missing atom", func(T *Trajectory) { T.Residues[0].Atoms = append(T.Residues[0].Atoms, 20) }, ErrMissingAtom},
		{"mismatched frames", func(T *Trajectory) { delete(T.Frames[2], 8) }, ErrMismatchedFrames},
		{"small residue", func(T *Trajectory) { T.Residues[1].Atoms = T.Residues[1].Atoms[:2] }, ErrSmallResidue},
	}
	for _, c := range cases {
		T := testTrajectory()
		c.edit(T)
		_, err := T.Validate(quietOptions())
		if !errors.Is(err, c.kind) {
			Te.Errorf("%s: expected %v, got %v", c.name, c.kind, err)
			continue
		}
		var e Error
		if !errors.As(err, &e) || !e.Critical() || len(e.Decorate("")) == 0 {
			Te.Errorf("%s: error %v is not a decorated critical Error", c.name, err)
		}
	}
	specs, err := testTrajectory().Validate(quietOptions())
	if err != nil {
		Te.Fatal(err)
	}
	if len(specs) != 2 || specs[0].ID != 1 || specs[1].ID != 2 {
		Te.Errorf("residues should be sorted by ID, got %v", specs)
	}
}

func TestSkipSmallResidues(Te *testing.T) {
	T := testTrajectory()
	T.Frames[0][9], T.Frames[1][9], T.Frames[2][9] = r3.Vec{X: 1}, r3.Vec{X: 2}, r3.Vec{X: 3}
	T.Residues = append(T.Residues, ResidueSpec{ID: 3, Atoms: []int{9}})
	if _, err := Analyze(T, quietOptions()); !errors.Is(err, ErrSmallResidue) {
		Te.Fatalf("expected ErrSmallResidue, got %v", err)
	}
	o := quietOptions()
	o.SkipSmallResidues(true)
	A, err := Analyze(T, o)
	if err != nil {
		Te.Fatal(err)
	}
	if A.Residue(3) != nil || A.Atom(9) != nil || len(A.Residues) != 2 {
		Te.Errorf("residue 3 should have been skipped: %s", A)
	}
	T.Residues = T.Residues[2:]
	if _, err := Analyze(T, o); !errors.Is(err, ErrEmpty) {
		Te.Errorf("expected ErrEmpty when every residue is skipped, got %v", err)
	}
}

func TestConformation(Te *testing.T) {
	T := testTrajectory()
	C, err := T.Conformation(2, []int{8, 5})
	if err != nil {
		Te.Fatal(err)
	}
	if C.Vec(1) != (r3.Vec{X: 5, Y: 5, Z: 5}) || C.Vec(0) != T.Frames[2][8] {
		Te.Errorf("unexpected conformation %v", C)
	}
	for _, f := range []int{-1, 3} {
		if _, err := T.Conformation(f, []int{5}); !errors.Is(err, ErrFrameRange) {
			Te.Errorf("frame %d: expected ErrFrameRange, got %v", f, err)
		}
	}
	if _, err := T.Conformation(0, nil); !errors.Is(err, ErrSmallResidue) {
		Te.Errorf("expected ErrSmallResidue for an empty atom list, got %v", err)
	}
	if _, err := T.Conformation(0, []int{42}); !errors.Is(err, ErrMissingAtom) {
		Te.Errorf("expected ErrMissingAtom, got %v", err)
	}
}
