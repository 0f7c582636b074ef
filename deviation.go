/*
 * deviation.go, part of gofluct.
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
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

//Note that, throughout this package, "RMSD" is the mean squared deviation
//after superposition, it is never square-rooted.

//Residue contains the per-frame deviation of a residue from its reference
//conformation, and its summaries.
type Residue struct {
	ID      int
	Atoms   []int
	RMSDs   []float64 //one per frame, RMSDs[0] is always 0.
	MinRMSD float64   //frame 0 excluded.
	MaxRMSD float64   //frame 0 excluded.
	RMSF    float64   //mean of RMSDs, frame 0 included.
}

//Atom contains the per-frame deviation vectors of an atom from its position in the
//reference conformation of its residue, and their summaries, which are computed from
//the squared norms of the vectors.
type Atom struct {
	ID      int
	Residue int
	RMSDs   []r3.Vec
	MinRMSD float64
	MaxRMSD float64
	RMSF    float64
}

//SquaredRMSD returns the squared length of the deviation vector of the atom at frame.
func (A *Atom) SquaredRMSD(frame int) float64 {
	return r3.Norm2(A.RMSDs[frame])
}

//Direction returns the unit vector in the direction of the deviation of the atom at frame,
//or the zero vector if there is no deviation.
func (A *Atom) Direction(frame int) r3.Vec {
	n := r3.Norm(A.RMSDs[frame])
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, A.RMSDs[frame])
}

//ResidueFit holds, for one residue, the centered conformation and the superposition
//rotation for every frame. It is produced by FitResidues and consumed by AtomDeviations.
type ResidueFit struct {
	ID            int
	Atoms         []int
	Conformations []*v3.Matrix
	Rotations     []*v3.Matrix
}

//fitResidue superimposes every frame of the residue on frame 0.
func fitResidue(T *Trajectory, spec ResidueSpec) (*ResidueFit, *Residue, error) {
	n := T.Len()
	fit := &ResidueFit{ID: spec.ID, Atoms: spec.Atoms, Conformations: make([]*v3.Matrix, n), Rotations: make([]*v3.Matrix, n)}
	res := &Residue{ID: spec.ID, Atoms: spec.Atoms, RMSDs: make([]float64, n)}
	for f := 0; f < n; f++ {
		raw, err := T.Conformation(f, spec.Atoms)
		if err != nil {
			return nil, nil, errDecorate(err, "fitResidue")
		}
		fit.Conformations[f], _ = align.Center(raw)
		R, msd, err := align.Align(fit.Conformations[0], fit.Conformations[f])
		if err != nil {
			return nil, nil, newError(ErrAlignment, "fitResidue", "residue %d, frame %d: %v", spec.ID, f, err)
		}
		fit.Rotations[f] = R
		if f == 0 {
			msd = 0
		}
		res.RMSDs[f] = msd
	}
	res.MinRMSD, res.MaxRMSD, res.RMSF = summarize(res.RMSDs)
	return fit, res, nil
}

//summarize returns the minimum and maximum of series, excluding the first element,
//and the mean of the whole series. series must have at least 2 elements.
func summarize(series []float64) (min, max, mean float64) {
	return floats.Min(series[1:]), floats.Max(series[1:]), stat.Mean(series, nil)
}

//FitResidues superimposes each frame of each residue in specs on the residue's first frame.
//It returns the fits, needed by AtomDeviations, and the residue deviations, both in the same
//order as specs. Residues are independent of each other, so up to o.Cpus() of them are fitted
//concurrently. Any error aborts the whole procedure.
func FitResidues(T *Trajectory, specs []ResidueSpec, o *Options) ([]*ResidueFit, []*Residue, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if T.Len() < 2 {
		return nil, nil, newError(ErrSingleFrame, "FitResidues", "got %d frame(s)", T.Len())
	}
	fits := make([]*ResidueFit, len(specs))
	residues := make([]*Residue, len(specs))
	var g errgroup.Group
	g.SetLimit(o.Cpus())
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			fit, res, err := fitResidue(T, spec)
			if err != nil {
				return err
			}
			fits[i], residues[i] = fit, res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, errDecorate(err, "FitResidues")
	}
	return fits, residues, nil
}

//AtomDeviations returns the deviation of every atom in the fits, sorted by atom ID.
//At frame 0 the deviation is R0*a-a, where a is the reference position and R0 the
//self-superposition rotation, at every other frame f it is Rf*bf-a.
func AtomDeviations(fits []*ResidueFit) ([]*Atom, error) {
	atoms := make([]*Atom, 0, len(fits)*4)
	for _, fit := range fits {
		n := len(fit.Conformations)
		if n < 2 || len(fit.Rotations) != n {
			return nil, newError(ErrSingleFrame, "AtomDeviations", "residue %d has %d conformations and %d rotations", fit.ID, n, len(fit.Rotations))
		}
		ref := fit.Conformations[0]
		for idx, id := range fit.Atoms {
			a := ref.Vec(idx)
			atom := &Atom{ID: id, Residue: fit.ID, RMSDs: make([]r3.Vec, n)}
			sq := make([]float64, n)
			for f := 0; f < n; f++ {
				atom.RMSDs[f] = r3.Sub(align.Rotate(fit.Rotations[f], fit.Conformations[f].Vec(idx)), a)
				sq[f] = r3.Norm2(atom.RMSDs[f])
			}
			atom.MinRMSD, atom.MaxRMSD, atom.RMSF = summarize(sq)
			atoms = append(atoms, atom)
		}
	}
	sort.Slice(atoms, func(i, j int) bool { return atoms[i].ID < atoms[j].ID })
	return atoms, nil
}
