package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram with fixed dividers. Bin i counts the values v for which
//dividers[i] <= v < dividers[i+1]. Values outside the dividers are omitted.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("gofluct/histo: %d bins for %d dividers", len(a.Histo), len(a.Dividers))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//if an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1. Panics if fewer than 2 dividers are given.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 {
		panic("gofluct/histo.NewData: at least 2 dividers are needed")
	}
	d := new(Data)
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//Ordinals returns dividers for a histogram of the integers 0 to n-1, one per bin.
func Ordinals(n int) []float64 {
	return floats.Span(make([]float64, n+1), 0, float64(n))
}

//Total returns the number of data points counted in the histogram.
func (D *Data) Total() int {
	return D.total
}

//String returns a 3-lines representation of the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//AddData adds the given data point(s) to the histogram. Points outside
//the dividers are not counted.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		j := sort.SearchFloat64s(D.dividers, v)
		if j == len(D.dividers) || D.dividers[j] != v {
			j--
		}
		D.histo[j]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize divides every bin by the number of data points.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize reverts a normalization.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//View returns the bins of the histogram. Changes to the slice are
//reflected in the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

//Mode returns the index of the most populated bin. Ties go to the lower bin.
func (D *Data) Mode() int {
	return floats.MaxIdx(D.histo)
}

//ReHisto replaces the content of the histogram with the counts of rawdata,
//which is not modified.
func (D *Data) ReHisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}
