package variability

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

//DefaultExpectedReplicates is the number of observations each species group should have
const DefaultExpectedReplicates = 10

//PopVariance returns sum((x-mean)^2)/n. NaN for an empty slice
func PopVariance(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.PopVariance(values, nil)
}

//SpeciesStat summarizes one species group
type SpeciesStat struct {
	Species  int
	Count    int
	Variance float64
	//Mismatch is set if Count differs from the expected replicate count
	Mismatch bool
	//Values is only kept for mismatching groups so they can be reported
	Values []float64
}

//WorldSummary bundles the species statistics of one world
type WorldSummary struct {
	World   string
	Species []SpeciesStat
	//MeanVariance is the mean over all species variances
	MeanVariance float64
}

//Mismatches returns the species groups whose size differs from the expected replicate count
func (ws WorldSummary) Mismatches() []SpeciesStat {
	res := make([]SpeciesStat, 0)
	for _, s := range ws.Species {
		if s.Mismatch {
			res = append(res, s)
		}
	}
	return res
}

//Summarize computes the population variance of every species group in groups
func Summarize(groups []WorldGroup, expectedReplicates int) []WorldSummary {
	summaries := make([]WorldSummary, len(groups))
	for i, world := range groups {
		variances := make([]float64, len(world.Species))
		stats := make([]SpeciesStat, len(world.Species))
		for j, species := range world.Species {
			variances[j] = PopVariance(species.Values)
			stats[j] = SpeciesStat{
				Species:  species.Species,
				Count:    len(species.Values),
				Variance: variances[j],
				Mismatch: len(species.Values) != expectedReplicates,
			}
			if stats[j].Mismatch {
				stats[j].Values = append([]float64(nil), species.Values...)
			}
		}
		summaries[i] = WorldSummary{
			World:        world.World,
			Species:      stats,
			MeanVariance: stat.Mean(variances, nil),
		}
	}
	return summaries
}
