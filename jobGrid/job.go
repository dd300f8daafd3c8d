package jobGrid

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

//Placeholders understood by Render
const (
	PlaceholderJobName       = "<<JOB_NAME>>"
	PlaceholderMemoryRequest = "<<MEMORY_REQUEST>>"
	PlaceholderTimeRequest   = "<<TIME_REQUEST>>"
	PlaceholderAccountName   = "<<ACCOUNT_NAME>>"
	PlaceholderArrayRange    = "<<ARRAY_RANGE>>"
	PlaceholderCPUsPerNode   = "<<CPUS_PER_NODE>>"
	PlaceholderExec          = "<<EXEC>>"
	PlaceholderJobSeedOffset = "<<JOB_SEED_OFFSET>>"
	PlaceholderConfigDir     = "<<CONFIG_DIR>>"
	PlaceholderRunDir        = "<<RUN_DIR>>"
	PlaceholderRunCommands   = "<<RUN_COMMANDS>>"
)

//SeedVar is the shell variable the template sets to the seed of the running replicate
const SeedVar = "${SEED}"

//Job is one condition of the grid together with everything derived from its ordinal
type Job struct {
	Ordinal int
	//Seed is the seed offset of the condition, see Config.Seed
	Seed int
	//Prefix is used for the submission file and the run directories
	Prefix      string
	Name        string
	RunDir      string
	Combination Combination
}

//NewJob derives the job with the given ordinal from combo
func NewJob(ordinal int, combo Combination, config Config) Job {
	prefix := fmt.Sprintf("RUN_C%d", ordinal)
	return Job{
		Ordinal: ordinal,
		Seed:    config.Seed(ordinal),
		Prefix:  prefix,
		Name:    fmt.Sprintf("%sC%d", config.JobNamePrefix, ordinal),
		//the run directory is expanded by the shell, so it always uses forward slashes
		RunDir:      path.Join(config.DataDir, prefix+"_"+SeedVar),
		Combination: combo,
	}
}

//FileName returns the name of the submission file
func (j Job) FileName() string {
	return j.Prefix + ".sb"
}

//CommandLine returns the arguments of the executable, including -SEED
func (j Job) CommandLine() string {
	return j.Combination.CommandLine(Entry{Name: "SEED", Kind: Flagged, Value: SeedVar})
}

//RunCommands returns the shell lines that log and start one replicate
func (j Job) RunCommands() string {
	var b strings.Builder
	fmt.Fprintf(&b, "RUN_PARAMS=\"%s\"\n", j.CommandLine())
	b.WriteString("echo \"./${EXEC} ${RUN_PARAMS}\" > cmd.log\n")
	b.WriteString("./${EXEC} ${RUN_PARAMS} > run.log\n")
	return b.String()
}

//Render substitutes all placeholders in template
func (j Job) Render(template string, config Config) string {
	replacer := strings.NewReplacer(
		PlaceholderJobName, j.Name,
		PlaceholderMemoryRequest, config.MemoryRequest,
		PlaceholderTimeRequest, config.TimeRequest,
		PlaceholderAccountName, config.Account,
		PlaceholderArrayRange, config.ArrayRange(),
		PlaceholderCPUsPerNode, strconv.Itoa(config.CPUsPerNode),
		PlaceholderExec, config.Executable,
		PlaceholderJobSeedOffset, strconv.Itoa(j.Seed),
		PlaceholderConfigDir, config.ConfigDir,
		PlaceholderRunDir, j.RunDir,
		PlaceholderRunCommands, j.RunCommands(),
	)
	return replacer.Replace(template)
}
