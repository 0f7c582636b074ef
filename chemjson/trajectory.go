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

package chemjson

import (
	"encoding/json"
	"io"

	fluct "github.com/rmera/gofluct"
	"gonum.org/v1/gonum/spatial/r3"
)

type jsonResidue struct {
	ID    int   `json:"id"`
	Atoms []int `json:"atoms"`
}

//A trajectory is a JSON object such as
//
//	{"residues":[{"id":1,"atoms":[1,2,3]}],"frames":[{"1":[0.1,0.2,0.3],"2":[...],"3":[...]}]}
//
//where the keys of each frame are atom IDs.
type jsonTrajectory struct {
	Residues []jsonResidue        `json:"residues"`
	Frames   []map[int][3]float64 `json:"frames"`
}

//ReadTrajectory decodes a trajectory from r. The trajectory is not validated.
func ReadTrajectory(r io.Reader) (*fluct.Trajectory, error) {
	var jt jsonTrajectory
	if err := json.NewDecoder(r).Decode(&jt); err != nil {
		return nil, NewError("input", "ReadTrajectory", err)
	}
	T := &fluct.Trajectory{Frames: make([]fluct.Frame, len(jt.Frames))}
	T.Residues = make([]fluct.ResidueSpec, len(jt.Residues))
	for i, r := range jt.Residues {
		T.Residues[i] = fluct.ResidueSpec{ID: r.ID, Atoms: r.Atoms}
	}
	for i, f := range jt.Frames {
		frame := make(fluct.Frame, len(f))
		for id, p := range f {
			frame[id] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
		}
		T.Frames[i] = frame
	}
	return T, nil
}

//WriteTrajectory encodes T to w.
func WriteTrajectory(w io.Writer, T *fluct.Trajectory) error {
	jt := jsonTrajectory{Residues: make([]jsonResidue, len(T.Residues)), Frames: make([]map[int][3]float64, len(T.Frames))}
	for i, r := range T.Residues {
		jt.Residues[i] = jsonResidue{ID: r.ID, Atoms: r.Atoms}
	}
	for i, f := range T.Frames {
		frame := make(map[int][3]float64, len(f))
		for id, p := range f {
			frame[id] = [3]float64{p.X, p.Y, p.Z}
		}
		jt.Frames[i] = frame
	}
	if err := json.NewEncoder(w).Encode(jt); err != nil {
		return NewError("output", "WriteTrajectory", err)
	}
	return nil
}
