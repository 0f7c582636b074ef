/*
 * palette.go, part of gofluct.
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

package scheme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

//The allowed number of colors (and therefore of steps in a scheme) of a palette.
const (
	MinSize = 3
	MaxSize = 7
)

//PaletteType classifies palettes by the kind of data they suit.
type PaletteType int

const (
	Sequential PaletteType = iota
	Diverging
	Qualitative
)

func (T PaletteType) String() string {
	switch T {
	case Sequential:
		return "sequential"
	case Diverging:
		return "diverging"
	case Qualitative:
		return "qualitative"
	}
	return fmt.Sprintf("PaletteType(%d)", int(T))
}

//Palette is a named set of color sequences, one for each size between MinSize and MaxSize.
type Palette struct {
	Name   string
	Type   PaletteType
	colors [MaxSize - MinSize + 1][]colorful.Color
}

//NewPalette builds a palette from hex color strings. colors maps each size to a
//space-separated list of exactly that many "#rrggbb" colors. Every size between MinSize
//and MaxSize must be present.
func NewPalette(name string, typ PaletteType, colors map[int]string) (*Palette, error) {
	P := &Palette{Name: name, Type: typ}
	for size := MinSize; size <= MaxSize; size++ {
		hexes := strings.Fields(colors[size])
		if len(hexes) != size {
			return nil, fmt.Errorf("gofluct/scheme: palette %s has %d colors for size %d", name, len(hexes), size)
		}
		cols := make([]colorful.Color, size)
		for i, h := range hexes {
			c, err := colorful.Hex(h)
			if err != nil {
				return nil, fmt.Errorf("gofluct/scheme: palette %s, size %d: %w", name, size, err)
			}
			cols[i] = c
		}
		P.colors[size-MinSize] = cols
	}
	return P, nil
}

//Colors returns a copy of the colors of the palette for the given size, or nil if
//size is out of range.
func (P *Palette) Colors(size int) []colorful.Color {
	if size < MinSize || size > MaxSize {
		return nil
	}
	return append([]colorful.Color(nil), P.colors[size-MinSize]...)
}

func (P *Palette) String() string {
	return fmt.Sprintf("%s (%s)", P.Name, P.Type)
}

//PaletteSet is an immutable, ordered collection of palettes, looked up by name.
type PaletteSet struct {
	order  []string
	byName map[string]*Palette
}

//NewPaletteSet returns a set with the given palettes, in the given order.
//Names must be unique and non-empty.
func NewPaletteSet(palettes ...*Palette) (*PaletteSet, error) {
	S := &PaletteSet{byName: make(map[string]*Palette, len(palettes))}
	for _, p := range palettes {
		if p == nil || p.Name == "" {
			return nil, fmt.Errorf("gofluct/scheme: nil or unnamed palette")
		}
		if _, ok := S.byName[p.Name]; ok {
			return nil, fmt.Errorf("gofluct/scheme: duplicated palette %s", p.Name)
		}
		S.byName[p.Name] = p
		S.order = append(S.order, p.Name)
	}
	return S, nil
}

//Get returns the palette with the given name, and whether it was found.
//Names are case-insensitive.
func (S *PaletteSet) Get(name string) (*Palette, bool) {
	if p, ok := S.byName[name]; ok {
		return p, true
	}
	for n, p := range S.byName {
		if strings.EqualFold(n, name) {
			return p, true
		}
	}
	return nil, false
}

//Names returns the names of the palettes, in the order the set was created with.
func (S *PaletteSet) Names() []string {
	return append([]string(nil), S.order...)
}

//First returns the first palette of the set, or nil if the set is empty.
func (S *PaletteSet) First() *Palette {
	if len(S.order) == 0 {
		return nil
	}
	return S.byName[S.order[0]]
}

//ByType returns the names of the palettes of type t, sorted.
func (S *PaletteSet) ByType(t PaletteType) []string {
	var ret []string
	for n, p := range S.byName {
		if p.Type == t {
			ret = append(ret, n)
		}
	}
	sort.Strings(ret)
	return ret
}

//ColorBrewer palettes (colorbrewer2.org).
var defaultPalettes = []struct {
	name   string
	typ    PaletteType
	colors map[int]string
}{
	{"RdPu", Sequential, map[int]string{
		3: "#fde0dd #fa9fb5 #c51b8a",
		4: "#feebe2 #fbb4b9 #f768a1 #ae017e",
		5: "#feebe2 #fbb4b9 #f768a1 #c51b8a #7a0177",
		6: "#feebe2 #fcc5c0 #fa9fb5 #f768a1 #c51b8a #7a0177",
		7: "#feebe2 #fcc5c0 #fa9fb5 #f768a1 #dd3497 #ae017e #7a0177",
	}},
	{"BrBG", Diverging, map[int]string{
		3: "#d8b365 #f5f5f5 #5ab4ac",
		4: "#a6611a #dfc27d #80cdc1 #018571",
		5: "#a6611a #dfc27d #f5f5f5 #80cdc1 #018571",
		6: "#8c510a #d8b365 #f6e8c3 #c7eae5 #5ab4ac #01665e",
		7: "#8c510a #d8b365 #f6e8c3 #f5f5f5 #c7eae5 #5ab4ac #01665e",
	}},
	{"Set1", Qualitative, map[int]string{
		3: "#e41a1c #377eb8 #4daf4a",
		4: "#e41a1c #377eb8 #4daf4a #984ea3",
		5: "#e41a1c #377eb8 #4daf4a #984ea3 #ff7f00",
		6: "#e41a1c #377eb8 #4daf4a #984ea3 #ff7f00 #ffff33",
		7: "#e41a1c #377eb8 #4daf4a #984ea3 #ff7f00 #ffff33 #a65628",
	}},
	{"RdYlBu", Diverging, map[int]string{
		3: "#fc8d59 #ffffbf #91bfdb",
		4: "#d7191c #fdae61 #abd9e9 #2c7bb6",
		5: "#d7191c #fdae61 #ffffbf #abd9e9 #2c7bb6",
		6: "#d73027 #fc8d59 #fee090 #e0f3f8 #91bfdb #4575b4",
		7: "#d73027 #fc8d59 #fee090 #ffffbf #e0f3f8 #91bfdb #4575b4",
	}},
}

//DefaultPalettes returns a new set with the RdPu, BrBG, Set1 and RdYlBu palettes, in that order.
func DefaultPalettes() *PaletteSet {
	ps := make([]*Palette, 0, len(defaultPalettes))
	for _, d := range defaultPalettes {
		p, err := NewPalette(d.name, d.typ, d.colors)
		if err != nil {
			panic(err.Error()) //the built-in palettes are always valid.
		}
		ps = append(ps, p)
	}
	S, err := NewPaletteSet(ps...)
	if err != nil {
		panic(err.Error())
	}
	return S
}
