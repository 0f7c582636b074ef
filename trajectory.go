/*
 * trajectory.go, part of gofluct.
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
	"sort"

	"github.com/rmera/gofluct/align"
	v3 "github.com/rmera/gofluct/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Frame maps atom identifiers to their positions in one snapshot of the trajectory.
type Frame map[int]r3.Vec

//ResidueSpec is a group of atoms superimposed as a unit. The order of
//Atoms is the order of the rows in the residue's conformations.
type ResidueSpec struct {
	ID    int
	Atoms []int
}

//Topology is the residue table of a trajectory. No atom can belong to more than one residue.
type Topology struct {
	Residues []ResidueSpec
}

//Trajectory is the input of the analysis: a residue table and a sequence of frames
//sharing the same atoms. The first frame is the reference.
type Trajectory struct {
	Topology
	Frames []Frame
}

//Len returns the number of frames in the trajectory.
func (T *Trajectory) Len() int {
	return len(T.Frames)
}

//Conformation returns the positions of the atoms listed in atoms at frame f, one per row,
//in the same order as atoms.
func (T *Trajectory) Conformation(f int, atoms []int) (*v3.Matrix, error) {
	if f < 0 || f >= len(T.Frames) {
		return nil, newError(ErrFrameRange, "Conformation", "frame %d, trajectory has %d frames", f, len(T.Frames))
	}
	if len(atoms) == 0 {
		return nil, newError(ErrSmallResidue, "Conformation", "no atoms requested")
	}
	frame := T.Frames[f]
	vecs := make([]r3.Vec, len(atoms))
	for i, id := range atoms {
		p, ok := frame[id]
		if !ok {
			return nil, newError(ErrMissingAtom, "Conformation", "atom %d not in frame %d", id, f)
		}
		vecs[i] = p
	}
	return v3.FromVecs(vecs), nil
}

//Validate checks the trajectory for the conditions needed for an analysis and returns the
//residues to be analyzed, sorted by ID. Residues with fewer than align.MinPoints atoms
//are an error, unless o.SkipSmallResidues() is true, in which case they are left out.
func (T *Trajectory) Validate(o *Options) ([]ResidueSpec, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if len(T.Frames) < 2 {
		return nil, newError(ErrSingleFrame, "Validate", "got %d frame(s)", len(T.Frames))
	}
	if len(T.Residues) == 0 {
		return nil, newError(ErrEmpty, "Validate", "the residue table is empty")
	}
	natoms := len(T.Frames[0])
	for f, frame := range T.Frames[1:] {
		if len(frame) != natoms {
			return nil, newError(ErrMismatchedFrames, "Validate", "frame %d has %d atoms, frame 0 has %d", f+1, len(frame), natoms)
		}
	}
	residues := make(map[int]bool, len(T.Residues))
	atoms := make(map[int]int, natoms)
	ret := make([]ResidueSpec, 0, len(T.Residues))
	for _, r := range T.Residues {
		if r.ID < 0 {
			return nil, newError(ErrNegativeID, "Validate", "residue %d", r.ID)
		}
		if residues[r.ID] {
			return nil, newError(ErrDuplicateResidue, "Validate", "residue %d", r.ID)
		}
		residues[r.ID] = true
		for _, a := range r.Atoms {
			if a < 0 {
				return nil, newError(ErrNegativeID, "Validate", "atom %d in residue %d", a, r.ID)
			}
			if owner, ok := atoms[a]; ok {
				return nil, newError(ErrSharedAtom, "Validate", "atom %d in residues %d and %d", a, owner, r.ID)
			}
			atoms[a] = r.ID
			for f, frame := range T.Frames {
				if _, ok := frame[a]; !ok {
					return nil, newError(ErrMissingAtom, "Validate", "atom %d of residue %d not in frame %d", a, r.ID, f)
				}
			}
		}
		if len(r.Atoms) < align.MinPoints {
			if !o.SkipSmallResidues() {
				return nil, newError(ErrSmallResidue, "Validate", "residue %d has %d atom(s)", r.ID, len(r.Atoms))
			}
			o.Logger().Warn("skipping residue with too few atoms to superimpose", "residue", r.ID, "atoms", len(r.Atoms))
			continue
		}
		ret = append(ret, ResidueSpec{ID: r.ID, Atoms: append([]int(nil), r.Atoms...)})
	}
	if len(ret) == 0 {
		return nil, newError(ErrEmpty, "Validate", "no residue with at least %d atoms", align.MinPoints)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret, nil
}
