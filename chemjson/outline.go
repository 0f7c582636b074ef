/*
 * outline.go, part of gofluct.
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
	"math"

	"github.com/rmera/gofluct/histo"
	"github.com/rmera/gofluct/outline"
	"github.com/rmera/gofluct/scheme"
)

//JSONStep is a scheme step. Infinite bounds are null.
type JSONStep struct {
	Number  int      `json:"number"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Color   string   `json:"color"`
	Caption string   `json:"caption"`
}

//JSONScheme is a scheme. ID is the entity it belongs to, or nil for a global scheme.
type JSONScheme struct {
	ID    *int       `json:"id"`
	Steps []JSONStep `json:"steps"`
}

//JSONColor is the color of one entity. Step is -1 for unresolved entities.
type JSONColor struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
	Step  int     `json:"step"`
	Color string  `json:"color"`
}

//JSONOutline is the serialized form of an outline.Result.
type JSONOutline struct {
	Mode       string       `json:"mode"`
	Boundary   string       `json:"boundary"`
	Level      string       `json:"level"`
	Statistic  string       `json:"statistic"`
	Palette    string       `json:"palette"`
	Size       int          `json:"size"`
	Filter     int          `json:"filter"`
	Frame      int          `json:"frame"`
	Entities   []JSONColor  `json:"entities"`
	Schemes    []JSONScheme `json:"schemes"`
	Unresolved []int        `json:"unresolved"`
	Legend     *histo.Data  `json:"legend"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func encodeScheme(id *int, s scheme.Scheme) JSONScheme {
	js := JSONScheme{ID: id, Steps: make([]JSONStep, len(s))}
	for i, st := range s {
		js.Steps[i] = JSONStep{Number: st.Number, Min: finite(st.Min), Max: finite(st.Max), Color: st.Hex(), Caption: st.Caption()}
	}
	return js
}

//EncodeOutline returns the serializable form of R.
func EncodeOutline(R *outline.Result) *JSONOutline {
	J := &JSONOutline{
		Mode:       R.Mode.String(),
		Boundary:   R.Boundary.String(),
		Level:      R.Rule.Level.String(),
		Statistic:  R.Rule.Statistic.String(),
		Palette:    R.Palette,
		Size:       R.Size,
		Filter:     R.Filter,
		Frame:      R.Frame,
		Entities:   make([]JSONColor, len(R.IDs)),
		Unresolved: append([]int{}, R.Unresolved...),
		Legend:     R.Legend,
	}
	for i, id := range R.IDs {
		J.Entities[i] = JSONColor{ID: id, Value: R.Values[id], Step: R.Steps[id], Color: R.Hex(id)}
	}
	if R.Rule.Source == outline.GlobalRange {
		if len(R.Schemes) > 0 {
			J.Schemes = []JSONScheme{encodeScheme(nil, R.Schemes[0])}
		}
		return J
	}
	for _, id := range R.IDs {
		if s := R.Scheme(id); s != nil {
			id := id
			J.Schemes = append(J.Schemes, encodeScheme(&id, s))
		}
	}
	return J
}

//WriteOutline encodes the colors, schemes and legend of R to w.
func WriteOutline(w io.Writer, R *outline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(EncodeOutline(R)); err != nil {
		return NewError("output", "WriteOutline", err)
	}
	return nil
}
