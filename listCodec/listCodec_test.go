package listCodec

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{name: "writer layout", raw: "[1 2 3 ]", want: []int{1, 2, 3}},
		{name: "tight brackets", raw: "[4 5]", want: []int{4, 5}},
		{name: "surrounding whitespace", raw: "  [7  8\t9]\n", want: []int{7, 8, 9}},
		{name: "negative", raw: "[-1 0 ]", want: []int{-1, 0}},
		{name: "empty", raw: "[]", want: []int{}},
		{name: "empty with space", raw: "[ ]", want: []int{}},
		{name: "missing brackets", raw: "1 2 3", wantErr: true},
		{name: "missing closing bracket", raw: "[1 2 3", wantErr: true},
		{name: "float entry", raw: "[1 2.5 ]", wantErr: true},
		{name: "garbage entry", raw: "[1 x ]", wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInts(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("ParseInts() error %v does not wrap ErrMalformed", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInts() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFloats(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []float64
		wantErr bool
	}{
		{name: "writer layout", raw: "[0.5 1 1e-3 ]", want: []float64{0.5, 1, 0.001}},
		{name: "ints are floats", raw: "[1 2]", want: []float64{1, 2}},
		{name: "empty", raw: "[]", want: []float64{}},
		{name: "garbage entry", raw: "[0.5 abc ]", wantErr: true},
		{name: "wrong brackets", raw: "(0.5 1)", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloats(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFloats() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFloats() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatParseInverse(t *testing.T) {
	ints := []int{3, 0, -2, 17}
	if got := FormatInts(ints); got != "[3 0 -2 17 ]" {
		t.Errorf("FormatInts() got %q", got)
	}
	gotInts, err := ParseInts(FormatInts(ints))
	if err != nil {
		t.Fatalf("unexpected error : %v", err)
	}
	if !reflect.DeepEqual(gotInts, ints) {
		t.Errorf("wanted %v got %v", ints, gotInts)
	}

	floats := []float64{0.1, 2, -3.25}
	gotFloats, err := ParseFloats(FormatFloats(floats))
	if err != nil {
		t.Fatalf("unexpected error : %v", err)
	}
	if !reflect.DeepEqual(gotFloats, floats) {
		t.Errorf("wanted %v got %v", floats, gotFloats)
	}

	if got := FormatInts(nil); got != "[]" {
		t.Errorf("FormatInts(nil) got %q", got)
	}
}
