/*
 * chemjson_test.go, part of gofluct.
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
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	fluct "github.com/rmera/gofluct"
	"github.com/rmera/gofluct/outline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTraj = `{"residues":[{"id":2,"atoms":[5,6,7,8]},{"id":1,"atoms":[1,2,3]}],
"frames":[
{"1":[0,0,0],"2":[1.5,0,0],"3":[0,1.5,0],"5":[5,5,5],"6":[6.5,5,5],"7":[5,6.5,5],"8":[5,5,6.5]},
{"1":[0,0,0],"2":[1.5,0,0],"3":[0,1.6,0],"5":[5,5,5],"6":[6.5,5,5],"7":[5,6.5,5],"8":[5.2,5,6.7]},
{"1":[0,0,0],"2":[1.6,0,0],"3":[0,1.5,0.1],"5":[5,5,5],"6":[6.5,5,5],"7":[5,6.5,5],"8":[5,5,6.5]}
]}`

func analyze(Te *testing.T) *fluct.Analysis {
	T, err := ReadTrajectory(strings.NewReader(testTraj))
	require.NoError(Te, err)
	o := fluct.DefaultOptions()
	o.Logger(log.New(io.Discard))
	A, err := fluct.Analyze(T, o)
	require.NoError(Te, err)
	return A
}

func TestReadTrajectory(Te *testing.T) {
	T, err := ReadTrajectory(strings.NewReader(testTraj))
	require.NoError(Te, err)
	require.Equal(Te, 3, T.Len())
	require.Len(Te, T.Residues, 2)
	assert.Equal(Te, []int{5, 6, 7, 8}, T.Residues[0].Atoms)
	assert.Equal(Te, 1.6, T.Frames[1][3].Y)
	assert.Equal(Te, 6.7, T.Frames[1][8].Z)

	var buf bytes.Buffer
	require.NoError(Te, WriteTrajectory(&buf, T))
	T2, err := ReadTrajectory(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, T, T2)

	_, err = ReadTrajectory(strings.NewReader(`{"frames":[{"a":[1,2,3]}]}`))
	require.Error(Te, err)
	var jerr *Error
	require.True(Te, errors.As(err, &jerr))
	assert.True(Te, jerr.InInput)
	assert.Contains(Te, string(jerr.Marshal()), "ReadTrajectory")
}

func TestAnalysisReport(Te *testing.T) {
	A := analyze(Te)
	var buf bytes.Buffer
	require.NoError(Te, WriteAnalysis(&buf, A))
	A2, err := ReadAnalysis(bytes.NewReader(buf.Bytes()))
	require.NoError(Te, err)
	assert.Equal(Te, A.Frames, A2.Frames)
	assert.Equal(Te, A.Extrema, A2.Extrema)
	assert.Equal(Te, A.Residues, A2.Residues)
	assert.Equal(Te, A.Atoms, A2.Atoms)

	var raw map[string]interface{}
	require.NoError(Te, json.Unmarshal(buf.Bytes(), &raw))
	raw["extrema"] = []float64{0, 0, 0, 0, 0, 0, 0, 0}
	tampered, err := json.Marshal(raw)
	require.NoError(Te, err)
	_, err = ReadAnalysis(bytes.NewReader(tampered))
	assert.Error(Te, err)

	raw["version"] = 99
	tampered, _ = json.Marshal(raw)
	_, err = ReadAnalysis(bytes.NewReader(tampered))
	assert.Error(Te, err)
}

func TestReadInconsistentAnalysis(Te *testing.T) {
	A := analyze(Te)
	var buf bytes.Buffer
	require.NoError(Te, WriteAnalysis(&buf, A))
	tests := []struct {
		name   string
		tamper func(ja *jsonAnalysis)
		kind   error
	}{
		{"residue minimum", func(ja *jsonAnalysis) { ja.Residues[1].Min *= 1.5 }, fluct.ErrInconsistent},
		{"residue rmsf", func(ja *jsonAnalysis) { ja.Residues[0].RMSF += 0.01 }, fluct.ErrInconsistent},
		{"reference frame", func(ja *jsonAnalysis) { ja.Residues[0].RMSD[0] = 0.1 }, fluct.ErrInconsistent},
		{"atom maximum", func(ja *jsonAnalysis) { ja.Atoms[2].Max = 0 }, fluct.ErrInconsistent},
		{"orphan atom", func(ja *jsonAnalysis) { ja.Atoms[0].Residue = 42 }, fluct.ErrInconsistent},
		{"repeated residue", func(ja *jsonAnalysis) { ja.Residues = append(ja.Residues, ja.Residues[0]) }, fluct.ErrDuplicateResidue},
		{"repeated atom", func(ja *jsonAnalysis) { ja.Atoms = append(ja.Atoms, ja.Atoms[3]) }, fluct.ErrSharedAtom},
	}
	for _, tt := range tests {
		var ja jsonAnalysis
		require.NoError(Te, json.Unmarshal(buf.Bytes(), &ja), tt.name)
		tt.tamper(&ja)
		b, err := json.Marshal(ja)
		require.NoError(Te, err, tt.name)
		_, err = ReadAnalysis(bytes.NewReader(b))
		require.Error(Te, err, tt.name)
		assert.True(Te, errors.Is(err, tt.kind), "%s: got %v", tt.name, err)
	}
}

func TestCompressedFiles(Te *testing.T) {
	A := analyze(Te)
	dir := Te.TempDir()
	for _, name := range []string{"report.json", "report.json.zst", "report.json.gz", "report.json.zz"} {
		fname := filepath.Join(dir, name)
		w, err := Create(fname)
		require.NoError(Te, err, name)
		require.NoError(Te, WriteAnalysis(w, A), name)
		require.NoError(Te, w.Close(), name)
		r, err := Open(fname)
		require.NoError(Te, err, name)
		A2, err := ReadAnalysis(r)
		require.NoError(Te, err, name)
		require.NoError(Te, r.Close(), name)
		assert.Equal(Te, A.Residues, A2.Residues, name)
	}
	assert.Equal(Te, Zstd, CodecFor("a.ZST"))
	assert.Equal(Te, Plain, CodecFor("a.json"))
	_, err := Open(filepath.Join(dir, "missing.json"))
	assert.Error(Te, err)
}

func TestWriteOutline(Te *testing.T) {
	A := analyze(Te)
	cfg := outline.DefaultConfig()
	cfg.Mode = outline.ResidueRMSD
	cfg.Boundary = outline.Relative
	cfg.Frame = 1
	O, err := outline.New(A, nil, cfg, log.New(io.Discard))
	require.NoError(Te, err)
	R, err := O.Recompute()
	require.NoError(Te, err)
	var buf bytes.Buffer
	require.NoError(Te, WriteOutline(&buf, R))
	var J JSONOutline
	require.NoError(Te, json.Unmarshal(buf.Bytes(), &J))
	assert.Equal(Te, "residue-rmsd", J.Mode)
	assert.Equal(Te, "relative", J.Boundary)
	assert.Equal(Te, "residue", J.Level)
	require.Len(Te, J.Entities, 2)
	assert.Equal(Te, 1, J.Entities[0].ID)
	assert.Equal(Te, R.Hex(2), J.Entities[1].Color)
	require.Len(Te, J.Schemes, 2)
	require.NotNil(Te, J.Schemes[0].ID)
	assert.Equal(Te, 1, *J.Schemes[0].ID)
	st := J.Schemes[1].Steps
	require.Len(Te, st, 5)
	assert.Nil(Te, st[0].Min)
	assert.Nil(Te, st[4].Max)
	assert.NotNil(Te, st[2].Min)
	assert.Equal(Te, R.Legend.View(), J.Legend.View())
	assert.Equal(Te, []int{}, J.Unresolved)
}
