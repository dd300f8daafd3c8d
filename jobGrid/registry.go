//Package jobGrid expands a grid of experiment parameters into cluster submission scripts.
//
//Every point of the Cartesian product of the registered parameter values is one condition. Each condition is
//rendered into a copy of a submission template that runs all replicates of the condition as an array job
package jobGrid

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

var (
	ErrUnknownParam   = errors.New("parameter not registered")
	ErrDuplicateParam = errors.New("parameter already registered")
	ErrNoValues       = errors.New("parameter has no values")
)

//Kind selects how a parameter value appears on the command line
type Kind int

const (
	//Flagged parameters are passed as "-NAME value"
	Flagged Kind = iota
	//Verbatim parameter values are appended to the command line as they are. Use them for
	//values that consist of several tokens
	Verbatim
)

func (k Kind) String() string {
	switch k {
	case Flagged:
		return "flagged"
	case Verbatim:
		return "verbatim"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

//Param is a named parameter with its candidate values
type Param struct {
	Name   string
	Kind   Kind
	Values []string
}

//Registry is an ordered set of parameters
type Registry struct {
	params []*Param
	index  map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

func (r *Registry) register(name string, kind Kind) error {
	if _, ok := r.index[name]; ok {
		return errors.Wrapf(ErrDuplicateParam, "%q", name)
	}
	r.index[name] = len(r.params)
	r.params = append(r.params, &Param{Name: name, Kind: kind})
	return nil
}

//Register declares a Flagged parameter without values
func (r *Registry) Register(name string) error {
	return r.register(name, Flagged)
}

//RegisterVerbatim declares a Verbatim parameter without values
func (r *Registry) RegisterVerbatim(name string) error {
	return r.register(name, Verbatim)
}

//AddValues appends candidate values to a registered parameter
func (r *Registry) AddValues(name string, values ...string) error {
	idx, ok := r.index[name]
	if !ok {
		return errors.Wrapf(ErrUnknownParam, "%q", name)
	}
	r.params[idx].Values = append(r.params[idx].Values, values...)
	return nil
}

//Params returns copies of all parameters in registration order
func (r *Registry) Params() []Param {
	res := make([]Param, len(r.params))
	for i, p := range r.params {
		res[i] = Param{
			Name:   p.Name,
			Kind:   p.Kind,
			Values: append([]string(nil), p.Values...),
		}
	}
	return res
}

//Count returns the number of combinations, i.e. the product of the value counts
func (r *Registry) Count() int {
	count := 1
	for _, p := range r.params {
		count *= len(p.Values)
	}
	return count
}

//Combinations enumerates the Cartesian product of all parameter values. The last registered parameter varies
//fastest, so the order is stable for a given registry
func (r *Registry) Combinations() ([]Combination, error) {
	lens := make([]int, len(r.params))
	for i, p := range r.params {
		if len(p.Values) == 0 {
			return nil, errors.Wrapf(ErrNoValues, "%q", p.Name)
		}
		lens[i] = len(p.Values)
	}
	//the product of zero parameters is a single empty assignment
	if len(r.params) == 0 {
		return []Combination{{}}, nil
	}

	product := combin.Cartesian(lens)
	combos := make([]Combination, len(product))
	for i, choice := range product {
		entries := make([]Entry, len(r.params))
		for j, p := range r.params {
			entries[j] = Entry{
				Name:  p.Name,
				Kind:  p.Kind,
				Value: p.Values[choice[j]],
			}
		}
		combos[i] = Combination{Entries: entries}
	}
	return combos, nil
}
