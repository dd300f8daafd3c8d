package jobGrid

import (
	"fmt"
)

//Config holds the scheduler settings shared by all conditions of a grid
type Config struct {
	//SeedOffset is the seed of the first replicate of the first condition
	SeedOffset int
	//Replicates per condition, submitted as array job 1-Replicates
	Replicates    int
	TimeRequest   string
	MemoryRequest string
	Account       string
	//JobNamePrefix is prepended to the per condition job name C<ordinal>
	JobNamePrefix string
	CPUsPerNode   int
	//Executable is started from the run directory as ./<Executable>
	Executable string
	//DataDir receives one run directory per replicate
	DataDir string
	//ConfigDir holds the experiment configuration files copied into each run directory
	ConfigDir string
}

//DefaultConfig returns the settings of the 2021-11-15 experiment
func DefaultConfig() Config {
	return Config{
		SeedOffset:    90000,
		Replicates:    30,
		TimeRequest:   "4:00:00",
		MemoryRequest: "4G",
		Account:       "devolab",
		CPUsPerNode:   1,
		Executable:    "avidagp-ec",
	}
}

//Validate checks the settings that would otherwise produce unusable scripts
func (c Config) Validate() error {
	if c.Replicates <= 0 {
		return fmt.Errorf("replicates must be positive, got %v", c.Replicates)
	}
	if c.CPUsPerNode <= 0 {
		return fmt.Errorf("cpus per node must be positive, got %v", c.CPUsPerNode)
	}
	if c.Executable == "" {
		return fmt.Errorf("executable must be set")
	}
	return nil
}

//Seed returns the seed offset of the condition with the given ordinal. The default template runs replicate r
//(1-based) with Seed(ordinal)+r-1, so the seed ranges of distinct conditions never overlap
func (c Config) Seed(ordinal int) int {
	return c.SeedOffset + ordinal*c.Replicates
}

//ArrayRange returns the scheduler array range covering all replicates
func (c Config) ArrayRange() string {
	return fmt.Sprintf("1-%d", c.Replicates)
}
