/*
 * extrema.go, part of gofluct.
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
)

//Range is a closed interval of deviation values.
type Range struct {
	Min float64
	Max float64
}

//NewRange returns an empty range, seeded so that the first
//value given to Update replaces both ends.
func NewRange() Range {
	return Range{Min: math.MaxFloat64, Max: -math.MaxFloat64}
}

//Update extends the range to contain min and max.
func (R *Range) Update(min, max float64) {
	if min < R.Min {
		R.Min = min
	}
	if max > R.Max {
		R.Max = max
	}
}

//Empty returns true if Update was never called on the range.
func (R Range) Empty() bool {
	return R.Min > R.Max
}

func (R Range) String() string {
	return fmt.Sprintf("[%g, %g]", R.Min, R.Max)
}

//Extrema contains the trajectory-wide minimum and maximum of the residue and atom
//summaries.
type Extrema struct {
	ResidueRMSD Range //from the residues' MinRMSD and MaxRMSD
	ResidueRMSF Range
	AtomRMSD    Range //from the atoms' MinRMSD and MaxRMSD
	AtomRMSF    Range
}

//ComputeExtrema reduces the summaries of all residues and atoms. The result does not
//depend on the order of either slice.
func ComputeExtrema(residues []*Residue, atoms []*Atom) Extrema {
	E := Extrema{ResidueRMSD: NewRange(), ResidueRMSF: NewRange(), AtomRMSD: NewRange(), AtomRMSF: NewRange()}
	for _, r := range residues {
		E.ResidueRMSD.Update(r.MinRMSD, r.MaxRMSD)
		E.ResidueRMSF.Update(r.RMSF, r.RMSF)
	}
	for _, a := range atoms {
		E.AtomRMSD.Update(a.MinRMSD, a.MaxRMSD)
		E.AtomRMSF.Update(a.RMSF, a.RMSF)
	}
	return E
}

//Values returns the 8 extrema in the order residue RMSD min/max, residue RMSF min/max,
//atom RMSD min/max, atom RMSF min/max.
func (E Extrema) Values() [8]float64 {
	return [8]float64{E.ResidueRMSD.Min, E.ResidueRMSD.Max, E.ResidueRMSF.Min, E.ResidueRMSF.Max,
		E.AtomRMSD.Min, E.AtomRMSD.Max, E.AtomRMSF.Min, E.AtomRMSF.Max}
}

//ExtremaFromValues is the inverse of Extrema.Values.
func ExtremaFromValues(v [8]float64) Extrema {
	return Extrema{
		ResidueRMSD: Range{v[0], v[1]},
		ResidueRMSF: Range{v[2], v[3]},
		AtomRMSD:    Range{v[4], v[5]},
		AtomRMSF:    Range{v[6], v[7]},
	}
}

func (E Extrema) String() string {
	return fmt.Sprintf("Residue RMSD: %s, Residue RMSF: %s, Atom RMSD: %s, Atom RMSF: %s", E.ResidueRMSD, E.ResidueRMSF, E.AtomRMSD, E.AtomRMSF)
}
