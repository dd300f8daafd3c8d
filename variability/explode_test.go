package variability

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"devoTools/listCodec"
	"devoTools/resultSource"
	"devoTools/testUtils"
)

func mustMetric(t *testing.T, name string) Metric {
	t.Helper()
	m, err := GetMetric(name)
	if err != nil {
		t.Fatalf("failed to get metric %v : %v", name, err)
	}
	return m
}

func TestExplode(t *testing.T) {
	rows := []resultSource.ResultsRow{
		{Line: 2, World: "1", Species: "[0 1 2 ]", Values: "[5 6 7 ]"},
		{Line: 3, World: "2", Species: "[2 0 ]", Values: "[8 9 ]"},
	}
	got, err := Explode(rows, mustMetric(t, "offspring"))
	if err != nil {
		t.Fatalf("unexpected error : %v", err)
	}
	want := []ExplodedRow{
		{World: "1", Species: 0, Value: 5},
		{World: "1", Species: 1, Value: 6},
		{World: "1", Species: 2, Value: 7},
		{World: "2", Species: 2, Value: 8},
		{World: "2", Species: 0, Value: 9},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %v got %v", want, got)
	}
}

//for equal length lists of length n, exploding yields exactly n records per row
func TestExplode_CountMatchesListLength(t *testing.T) {
	for n := 0; n < 20; n += 3 {
		species := make([]int, n)
		values := testUtils.DRNGFloat64Slice(n, int64(n))
		for i := range species {
			species[i] = i
		}
		rows := []resultSource.ResultsRow{{
			World:   "w",
			Species: listCodec.FormatInts(species),
			Values:  listCodec.FormatFloats(values),
		}}
		got, err := Explode(rows, mustMetric(t, "fitness"))
		if err != nil {
			t.Fatalf("n=%v : unexpected error : %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("n=%v : got %v records", n, len(got))
		}
		for i := range got {
			if got[i].Species != species[i] || got[i].Value != values[i] {
				t.Errorf("n=%v : record %v is %+v, wanted species %v value %v", n, i, got[i], species[i], values[i])
			}
		}
	}
}

func TestExplode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		metric      string
		row         resultSource.ResultsRow
		specificErr error
	}{
		{
			name:        "length mismatch",
			metric:      "fitness",
			row:         resultSource.ResultsRow{Line: 7, World: "1", Species: "[0 1 ]", Values: "[0.5 ]"},
			specificErr: ErrLengthMismatch,
		},
		{
			name:        "non numeric value",
			metric:      "fitness",
			row:         resultSource.ResultsRow{World: "1", Species: "[0 ]", Values: "[abc ]"},
			specificErr: listCodec.ErrMalformed,
		},
		{
			name:        "fractional offspring count",
			metric:      "offspring",
			row:         resultSource.ResultsRow{World: "1", Species: "[0 ]", Values: "[1.5 ]"},
			specificErr: listCodec.ErrMalformed,
		},
		{
			name:        "malformed species",
			metric:      "offspring",
			row:         resultSource.ResultsRow{World: "1", Species: "0 1", Values: "[1 2 ]"},
			specificErr: listCodec.ErrMalformed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Explode([]resultSource.ResultsRow{tt.row}, mustMetric(t, tt.metric))
			if !errors.Is(err, tt.specificErr) {
				t.Errorf("Explode() wanted error %v got %v", tt.specificErr, err)
			}
		})
	}
}

func TestGroupByWorld_EncounterOrder(t *testing.T) {
	exploded := []ExplodedRow{
		{World: "b", Species: 3, Value: 1},
		{World: "a", Species: 1, Value: 2},
		{World: "b", Species: 0, Value: 3},
		{World: "b", Species: 3, Value: 4},
		{World: "a", Species: 1, Value: 5},
	}
	got := GroupByWorld(exploded)
	want := []WorldGroup{
		{World: "b", Species: []SpeciesGroup{{Species: 3, Values: []float64{1, 4}}, {Species: 0, Values: []float64{3}}}},
		{World: "a", Species: []SpeciesGroup{{Species: 1, Values: []float64{2, 5}}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %+v got %+v", want, got)
	}
}

func TestPopVariance(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "constant", values: []float64{4, 4, 4, 4}, want: 0},
		{name: "one to five", values: []float64{1, 2, 3, 4, 5}, want: 2},
		{name: "single value", values: []float64{7}, want: 0},
		{name: "two values", values: []float64{0, 10}, want: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PopVariance(tt.values); !testUtils.FloatEqUpTo(got, tt.want, 1e-12) {
				t.Errorf("PopVariance() = %v, want %v", got, tt.want)
			}
		})
	}
	if got := PopVariance(nil); !math.IsNaN(got) {
		t.Errorf("PopVariance(nil) = %v, want NaN", got)
	}
}

func TestSummarize(t *testing.T) {
	groups := []WorldGroup{{
		World: "1",
		Species: []SpeciesGroup{
			{Species: 0, Values: []float64{1, 2, 3, 4, 5}},
			{Species: 1, Values: []float64{2, 2, 2, 2, 2}},
			{Species: 2, Values: []float64{1, 3, 1, 3}},
		},
	}}
	got := Summarize(groups, 5)
	if len(got) != 1 {
		t.Fatalf("wanted 1 summary got %v", len(got))
	}
	variances := []float64{got[0].Species[0].Variance, got[0].Species[1].Variance, got[0].Species[2].Variance}
	if !testUtils.FloatSliceEqUpTo(variances, []float64{2, 0, 1}, 1e-12) {
		t.Errorf("wanted variances [2 0 1] got %v", variances)
	}
	if !testUtils.FloatEqUpTo(got[0].MeanVariance, 1, 1e-12) {
		t.Errorf("wanted mean variance 1 got %v", got[0].MeanVariance)
	}
	mismatches := got[0].Mismatches()
	if len(mismatches) != 1 || mismatches[0].Species != 2 || mismatches[0].Count != 4 {
		t.Errorf("wanted species 2 with 4 values as only mismatch got %+v", mismatches)
	}
	if !reflect.DeepEqual(mismatches[0].Values, []float64{1, 3, 1, 3}) {
		t.Errorf("mismatch should carry its values, got %v", mismatches[0].Values)
	}
}

func TestGetMetric(t *testing.T) {
	m := mustMetric(t, "offspring")
	if got := m.PlotFileName("3"); got != "offspring_counts_3.png" {
		t.Errorf("got plot file name %v", got)
	}
	if got := mustMetric(t, "fitness").PlotTitle("2"); got != "World 2 fitness variability" {
		t.Errorf("got title %v", got)
	}
	if _, err := GetMetric("speed"); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("wanted ErrUnknownMetric got %v", err)
	}
	if got := GetAvailableMetrics(); !reflect.DeepEqual(got, []string{"fitness", "offspring"}) {
		t.Errorf("got available metrics %v", got)
	}
}
