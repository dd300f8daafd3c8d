//Package variability provides the per-species variability analysis of experiment result tables
package variability

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownMetric = errors.New("unknown metric")

//Metric describes one result table and how its list cells are interpreted and plotted
type Metric struct {
	//Name is used on the command line
	Name string
	//FileName of the table inside the experiment directory
	FileName string
	//Column holding the metric values
	Column string
	//PlotPrefix is combined with the world value to name plot files: <PlotPrefix>_<world>.png
	PlotPrefix string
	//TitleNoun is used in plot titles: World <world> <TitleNoun> variability
	TitleNoun string
	//Integral metrics must only contain integer values
	Integral bool
	//ReportMean adds the mean of the species variances of each world to the report
	ReportMean bool
}

//PlotFileName returns the plot file name for world
func (m Metric) PlotFileName(world string) string {
	return fmt.Sprintf("%s_%s.png", m.PlotPrefix, world)
}

//PlotTitle returns the plot title for world
func (m Metric) PlotTitle(world string) string {
	return fmt.Sprintf("World %s %s variability", world, m.TitleNoun)
}

//availableMetrics hand edited list of known result tables. If the experiments
//start recording a new per-species table, add it here
var availableMetrics = map[string]Metric{
	"offspring": {
		Name:       "offspring",
		FileName:   "offspring_count.csv",
		Column:     "offspring",
		PlotPrefix: "offspring_counts",
		TitleNoun:  "offspring count",
		Integral:   true,
	},
	"fitness": {
		Name:       "fitness",
		FileName:   "fitnesses.csv",
		Column:     "fitness",
		PlotPrefix: "fitness",
		TitleNoun:  "fitness",
		ReportMean: true,
	},
}

//GetAvailableMetrics returns the sorted names of all metrics that may be passed to GetMetric
func GetAvailableMetrics() []string {
	names := make([]string, 0, len(availableMetrics))
	for key := range availableMetrics {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

//GetMetric returns the metric registered for name
func GetMetric(name string) (Metric, error) {
	m, ok := availableMetrics[name]
	if !ok {
		return Metric{}, fmt.Errorf("%w %q, available are %v", ErrUnknownMetric, name, GetAvailableMetrics())
	}
	return m, nil
}
