/*
 * analysis.go, part of gofluct.
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
	"fmt"
	"math"
	"sort"
	"time"
)

//Analysis is the result of analyzing a trajectory. Residues and Atoms are sorted by ID.
//It is not modified after it is created.
type Analysis struct {
	Frames   int
	Residues []*Residue
	Atoms    []*Atom
	Extrema  Extrema
}

//NewAnalysis builds an Analysis from already computed residue and atom deviations,
//sorting them and computing the trajectory-wide extrema. All the series must have frames elements.
func NewAnalysis(frames int, residues []*Residue, atoms []*Atom) (*Analysis, error) {
	if frames < 2 {
		return nil, newError(ErrSingleFrame, "NewAnalysis", "got %d frame(s)", frames)
	}
	for _, r := range residues {
		if len(r.RMSDs) != frames {
			return nil, newError(ErrMismatchedFrames, "NewAnalysis", "residue %d has %d values for %d frames", r.ID, len(r.RMSDs), frames)
		}
	}
	for _, a := range atoms {
		if len(a.RMSDs) != frames {
			return nil, newError(ErrMismatchedFrames, "NewAnalysis", "atom %d has %d values for %d frames", a.ID, len(a.RMSDs), frames)
		}
	}
	sort.Slice(residues, func(i, j int) bool { return residues[i].ID < residues[j].ID })
	sort.Slice(atoms, func(i, j int) bool { return atoms[i].ID < atoms[j].ID })
	for i := 1; i < len(residues); i++ {
		if residues[i].ID == residues[i-1].ID {
			return nil, newError(ErrDuplicateResidue, "NewAnalysis", "residue %d", residues[i].ID)
		}
	}
	for i := 1; i < len(atoms); i++ {
		if atoms[i].ID == atoms[i-1].ID {
			return nil, newError(ErrSharedAtom, "NewAnalysis", "atom %d", atoms[i].ID)
		}
	}
	return &Analysis{Frames: frames, Residues: residues, Atoms: atoms, Extrema: ComputeExtrema(residues, atoms)}, nil
}

//Analyze superimposes every residue of every frame of T on the first frame and
//returns the residue and atom deviations, with their trajectory-wide extrema.
//The trajectory is rejected as a whole if any residue can't be analyzed.
func Analyze(T *Trajectory, o *Options) (*Analysis, error) {
	if o == nil {
		o = DefaultOptions()
	}
	logger := o.Logger()
	start := time.Now()
	specs, err := T.Validate(o)
	if err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	logger.Debug("trajectory validated", "frames", T.Len(), "residues", len(specs), "cpus", o.Cpus())
	fits, residues, err := FitResidues(T, specs, o)
	if err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	logger.Debug("residues fitted", "residues", len(residues), "elapsed", time.Since(start).Round(time.Millisecond))
	atoms, err := AtomDeviations(fits)
	if err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	A, err := NewAnalysis(T.Len(), residues, atoms)
	if err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	logger.Info("trajectory analyzed", "frames", A.Frames, "residues", len(A.Residues), "atoms", len(A.Atoms), "elapsed", time.Since(start).Round(time.Millisecond))
	return A, nil
}

//Check verifies that the summaries of every residue and atom agree, within a relative
//tolerance tol, with the ones computed from its series, that no residue deviates at
//the reference frame, and that every atom belongs to one of the residues.
//It is meant for analyses that were not produced by Analyze.
func (A *Analysis) Check(tol float64) error {
	for _, r := range A.Residues {
		if r.RMSDs[0] != 0 {
			return newError(ErrInconsistent, "Check", "residue %d deviates by %g at the reference frame", r.ID, r.RMSDs[0])
		}
		if err := checkSummary(r.RMSDs, r.MinRMSD, r.MaxRMSD, r.RMSF, tol); err != nil {
			return newError(ErrInconsistent, "Check", "residue %d: %v", r.ID, err)
		}
	}
	for _, a := range A.Atoms {
		if A.Residue(a.Residue) == nil {
			return newError(ErrInconsistent, "Check", "atom %d belongs to residue %d, which is not in the analysis", a.ID, a.Residue)
		}
		sq := make([]float64, len(a.RMSDs))
		for f := range sq {
			sq[f] = a.SquaredRMSD(f)
		}
		if err := checkSummary(sq, a.MinRMSD, a.MaxRMSD, a.RMSF, tol); err != nil {
			return newError(ErrInconsistent, "Check", "atom %d: %v", a.ID, err)
		}
	}
	return nil
}

func checkSummary(series []float64, min, max, rmsf, tol float64) error {
	wmin, wmax, wrmsf := summarize(series)
	same := func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}
		return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	}
	switch {
	case !same(min, wmin):
		return fmt.Errorf("minimum RMSD is %g, the series gives %g", min, wmin)
	case !same(max, wmax):
		return fmt.Errorf("maximum RMSD is %g, the series gives %g", max, wmax)
	case !same(rmsf, wrmsf):
		return fmt.Errorf("RMSF is %g, the series gives %g", rmsf, wrmsf)
	}
	return nil
}

//Residue returns the residue with the given ID, or nil.
func (A *Analysis) Residue(id int) *Residue {
	i := sort.Search(len(A.Residues), func(i int) bool { return A.Residues[i].ID >= id })
	if i < len(A.Residues) && A.Residues[i].ID == id {
		return A.Residues[i]
	}
	return nil
}

//Atom returns the atom with the given ID, or nil.
func (A *Analysis) Atom(id int) *Atom {
	i := sort.Search(len(A.Atoms), func(i int) bool { return A.Atoms[i].ID >= id })
	if i < len(A.Atoms) && A.Atoms[i].ID == id {
		return A.Atoms[i]
	}
	return nil
}

//MaxResidueID returns the largest residue ID, or -1 if there are no residues.
func (A *Analysis) MaxResidueID() int {
	if len(A.Residues) == 0 {
		return -1
	}
	return A.Residues[len(A.Residues)-1].ID
}

//MaxAtomID returns the largest atom ID, or -1 if there are no atoms.
func (A *Analysis) MaxAtomID() int {
	if len(A.Atoms) == 0 {
		return -1
	}
	return A.Atoms[len(A.Atoms)-1].ID
}

//String returns a one-line summary of the analysis.
func (A *Analysis) String() string {
	return fmt.Sprintf("Analysis (%d frames, %d residues, %d atoms; %s)", A.Frames, len(A.Residues), len(A.Atoms), A.Extrema)
}
