package histo

import (
	"encoding/json"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//Matrix is a row-major matrix of histograms. If it has dividers, all its
//histograms share them.
type Matrix struct {
	rows, cols int
	d          []*Data
	dividers   []float64
}

//NewMatrix returns a new matrix of r rows and c columns of empty positions.
//dividers can be nil, in which case the histograms of the matrix are not forced to
//have the same dividers.
func NewMatrix(r, c int, dividers []float64) *Matrix {
	ret := new(Matrix)
	ret.rows = r
	ret.cols = c
	ret.d = make([]*Data, r*c)
	if dividers != nil {
		ret.dividers = append([]float64(nil), dividers...)
	}
	return ret
}

func (M *Matrix) Dims() (int, int) {
	return M.rows, M.cols
}

func (M *Matrix) String() string {
	ret := fmt.Sprintf("rows:%d cols:%d | Data:\n", M.rows, M.cols)
	t := make([]string, 0, len(M.d))
	for _, v := range M.d {
		if v == nil {
			t = append(t, "<nil>")
			continue
		}
		t = append(t, v.String())
	}
	return ret + strings.Join(t, "\n\n")
}

type jsonMatrix struct {
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	D        []*Data   `json:"data"`
	Dividers []float64 `json:"dividers"`
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMatrix{Rows: M.rows, Cols: M.cols, D: M.d, Dividers: M.dividers})
}

func (M *Matrix) UnmarshalJSON(b []byte) error {
	var a jsonMatrix
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.D) != a.Rows*a.Cols {
		return fmt.Errorf("gofluct/histo: %d histograms for a %dx%d matrix", len(a.D), a.Rows, a.Cols)
	}
	M.rows = a.Rows
	M.cols = a.Cols
	M.d = a.D
	M.dividers = a.Dividers
	return nil
}

//returns the index in the []*Data slice of a matrix given
//the row and column indexes.
func (M *Matrix) rc2i(r, c int) int {
	M.check(r, c, true)
	return M.cols*r + c
}

//check returns an error if the given row or column index is out of range.
//if pan is given and true, it panics instead.
func (M *Matrix) check(r, c int, pan ...bool) error {
	var err error
	if r < 0 || r >= M.rows {
		err = fmt.Errorf("gofluct/histo: row %d out of range", r)
	}
	if c < 0 || c >= M.cols {
		err = fmt.Errorf("gofluct/histo: column %d out of range", c)
	}
	if err != nil && len(pan) > 0 && pan[0] {
		panic(err.Error())
	}
	return err
}

//NewHisto puts a new histogram in the r,c position in the matrix. dividers can be nil, in which
//case the matrix's are used. It is an error to give dividers that don't match the matrix's
//or to give none when the matrix has none. rawdata can be nil, in which case an empty
//histogram is put in the position.
func (M *Matrix) NewHisto(r, c int, dividers []float64, rawdata []float64) error {
	if err := M.check(r, c); err != nil {
		return err
	}
	if dividers == nil {
		if M.dividers == nil {
			return fmt.Errorf("gofluct/histo: dividers not given, and the matrix has none")
		}
		dividers = M.dividers
	} else if M.dividers != nil && !floats.Equal(M.dividers, dividers) {
		return fmt.Errorf("gofluct/histo: dividers don't match the dividers of the matrix")
	}
	i := M.rc2i(r, c)
	M.d[i] = NewData(dividers, rawdata, i)
	return nil
}

//View returns the histogram in the r,c position in the matrix.
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

//NormalizeAll normalizes all the histograms in the matrix
func (M *Matrix) NormalizeAll() {
	for _, v := range M.d {
		if v != nil {
			v.Normalize()
		}
	}
}
