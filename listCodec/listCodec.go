//Package listCodec parses and formats the list cells found in experiment result tables.
//
//A list cell is written as "[v1 v2 ... vn]". Values are separated by runs of whitespace and
//whitespace directly inside the brackets is ignored, so the "[1 2 3 ]" layout produced by the
//experiment writers is accepted as well as "[1 2 3]". "[]" is the empty list.
package listCodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed list cell")

//tokens strips the brackets from raw and returns the whitespace separated values
func tokens(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("%w : expected \"[v1 v2 ...]\" got %q", ErrMalformed, raw)
	}
	return strings.Fields(s[1 : len(s)-1]), nil
}

//ParseFloats parses a list cell with float64 entries
func ParseFloats(raw string) ([]float64, error) {
	toks, err := tokens(raw)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(toks))
	for i, tok := range toks {
		values[i], err = strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w : entry %v (%q) is not a number : %v", ErrMalformed, i, tok, err)
		}
	}
	return values, nil
}

//ParseInts parses a list cell with integer entries. Entries like "3.0" are rejected
func ParseInts(raw string) ([]int, error) {
	toks, err := tokens(raw)
	if err != nil {
		return nil, err
	}
	values := make([]int, len(toks))
	for i, tok := range toks {
		values[i], err = strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w : entry %v (%q) is not an integer : %v", ErrMalformed, i, tok, err)
		}
	}
	return values, nil
}

//FormatInts is the inverse of ParseInts. Every value is followed by a space, matching the
//layout of the experiment writers
func FormatInts(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, v := range values {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(' ')
	}
	b.WriteByte(']')
	return b.String()
}

//FormatFloats is the inverse of ParseFloats, using the shortest representation that round trips
func FormatFloats(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, v := range values {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte(' ')
	}
	b.WriteByte(']')
	return b.String()
}
