package histo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"github.com/stretchr/testify/require"
)

func TestOrdinals(Te *testing.T) {
	d := NewData(Ordinals(3), []float64{0, 2, 2, 1, 2, -1, 3})
	assert.Equal(Te, []float64{1, 1, 3}, d.View())
	assert.Equal(Te, 5, d.Total())
	assert.Equal(Te, 2, d.Mode())
	d.AddData(0, 0, 7)
	assert.Equal(Te, []float64{3, 1, 3}, d.View())
	assert.Equal(Te, 0, d.Mode())
	d.Normalize()
	assert.InDelta(Te, 1.0, floats.Sum(d.View()), 1e-12)
	d.AddData(1)
	assert.True(Te, d.Normalized())
	d.UnNormalize()
	assert.InDeltaSlice(Te, []float64{3, 2, 3}, d.View(), 1e-12)
}

func TestHistoIO(Te *testing.T) {
	M := NewMatrix(3, 3, []float64{0, 1, 2, 3, 4, 8})
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	require.NoError(Te, M.NewHisto(0, 1, nil, rawdata))
	require.Error(Te, M.NewHisto(0, 1, []float64{0, 1}, nil))
	require.Error(Te, M.NewHisto(3, 0, nil, nil))
	v := M.View(0, 1)
	assert.Equal(Te, []float64{2, 6, 2, 7, 9}, v.View())
	j, err := json.Marshal(M)
	require.NoError(Te, err)
	M2 := new(Matrix)
	require.NoError(Te, json.Unmarshal(j, M2))
	r, c := M2.Dims()
	assert.Equal(Te, 3, r)
	assert.Equal(Te, 3, c)
	assert.Equal(Te, v.View(), M2.View(0, 1).View())
	assert.Nil(Te, M2.View(2, 2))
	M2.NormalizeAll()
	assert.True(Te, M2.View(0, 1).Normalized())
	assert.InDelta(Te, 1.0, floats.Sum(M2.View(0, 1).View()), 1e-12)
	assert.Equal(Te, 26, M2.View(0, 1).Total())
	assert.Panics(Te, func() { M2.View(3, 0) })
}
