/*
 * report.go, part of gofluct.
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
	"fmt"
	"io"

	fluct "github.com/rmera/gofluct"
	"gonum.org/v1/gonum/spatial/r3"
)

//ReportVersion is the version of the analysis report format.
const ReportVersion = 1

type jsonResidueDeviation struct {
	ID    int       `json:"id"`
	Atoms []int     `json:"atoms"`
	RMSD  []float64 `json:"rmsd"`
	Min   float64   `json:"min_rmsd"`
	Max   float64   `json:"max_rmsd"`
	RMSF  float64   `json:"rmsf"`
}

type jsonAtomDeviation struct {
	ID      int          `json:"id"`
	Residue int          `json:"residue"`
	RMSD    [][3]float64 `json:"rmsd"`
	Min     float64      `json:"min_rmsd"`
	Max     float64      `json:"max_rmsd"`
	RMSF    float64      `json:"rmsf"`
}

type jsonAnalysis struct {
	Version  int                    `json:"version"`
	Frames   int                    `json:"frames"`
	Extrema  [8]float64             `json:"extrema"`
	Residues []jsonResidueDeviation `json:"residues"`
	Atoms    []jsonAtomDeviation    `json:"atoms"`
}

//WriteAnalysis encodes the complete analysis A to w, so it can be loaded with ReadAnalysis.
func WriteAnalysis(w io.Writer, A *fluct.Analysis) error {
	ja := jsonAnalysis{
		Version:  ReportVersion,
		Frames:   A.Frames,
		Extrema:  A.Extrema.Values(),
		Residues: make([]jsonResidueDeviation, len(A.Residues)),
		Atoms:    make([]jsonAtomDeviation, len(A.Atoms)),
	}
	for i, r := range A.Residues {
		ja.Residues[i] = jsonResidueDeviation{ID: r.ID, Atoms: r.Atoms, RMSD: r.RMSDs, Min: r.MinRMSD, Max: r.MaxRMSD, RMSF: r.RMSF}
	}
	for i, a := range A.Atoms {
		vecs := make([][3]float64, len(a.RMSDs))
		for j, v := range a.RMSDs {
			vecs[j] = [3]float64{v.X, v.Y, v.Z}
		}
		ja.Atoms[i] = jsonAtomDeviation{ID: a.ID, Residue: a.Residue, RMSD: vecs, Min: a.MinRMSD, Max: a.MaxRMSD, RMSF: a.RMSF}
	}
	if err := json.NewEncoder(w).Encode(ja); err != nil {
		return NewError("output", "WriteAnalysis", err)
	}
	return nil
}

//ReadAnalysis decodes an analysis written by WriteAnalysis. The summaries of every
//entity and the extrema are computed again, and it is an error if they don't match the
//stored ones, or if an ID is repeated.
func ReadAnalysis(r io.Reader) (*fluct.Analysis, error) {
	var ja jsonAnalysis
	if err := json.NewDecoder(r).Decode(&ja); err != nil {
		return nil, NewError("input", "ReadAnalysis", err)
	}
	if ja.Version != ReportVersion {
		return nil, NewError("input", "ReadAnalysis", fmt.Errorf("unsupported report version %d", ja.Version))
	}
	residues := make([]*fluct.Residue, len(ja.Residues))
	for i, jr := range ja.Residues {
		residues[i] = &fluct.Residue{ID: jr.ID, Atoms: jr.Atoms, RMSDs: jr.RMSD, MinRMSD: jr.Min, MaxRMSD: jr.Max, RMSF: jr.RMSF}
	}
	atoms := make([]*fluct.Atom, len(ja.Atoms))
	for i, at := range ja.Atoms {
		vecs := make([]r3.Vec, len(at.RMSD))
		for j, v := range at.RMSD {
			vecs[j] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
		}
		atoms[i] = &fluct.Atom{ID: at.ID, Residue: at.Residue, RMSDs: vecs, MinRMSD: at.Min, MaxRMSD: at.Max, RMSF: at.RMSF}
	}
	A, err := fluct.NewAnalysis(ja.Frames, residues, atoms)
	if err != nil {
		return nil, NewError("input", "ReadAnalysis", err)
	}
	if err := A.Check(1e-9); err != nil {
		return nil, NewError("input", "ReadAnalysis", err)
	}
	if A.Extrema.Values() != ja.Extrema {
		return nil, NewError("input", "ReadAnalysis", fmt.Errorf("stored extrema %v don't match the data (%s)", ja.Extrema, A.Extrema))
	}
	return A, nil
}
