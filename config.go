package genetic_crossover

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ToolConfig is the config file shared by the genetic_crossover tools.
type ToolConfig struct {
	LogLevel    string             `toml:"log_level"`
	Seed        int64              `toml:"seed"`
	Persistence *PersistenceConfig `toml:"persistence"`
	Breeder     *BreederConfig     `toml:"breeder"`
	Evaluator   *EvaluatorConfig   `toml:"eval"`
}

// ParentsConfig holds two integer parents for a single crossover run.
type ParentsConfig struct {
	Parent1 []int `toml:"parent1"`
	Parent2 []int `toml:"parent2"`
}

func LoadToolConfig(path string) (*ToolConfig, error) {
	var config ToolConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config %s: %w", path, err)
	}
	return &config, nil
}

func LoadParentsConfig(path string) (*ParentsConfig, error) {
	var config ParentsConfig
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal parents config %s: %w", path, err)
	}
	if !md.IsDefined("parent1") || !md.IsDefined("parent2") {
		return nil, fmt.Errorf("Parents config %s must define both parent1 and parent2", path)
	}
	return &config, nil
}

// Parents returns the configured parents as permutation chromosomes.
func (pc *ParentsConfig) Parents() [2]Chromosome[int] {
	return [2]Chromosome[int]{
		NewPermutationChromosomeFromGenes(pc.Parent1),
		NewPermutationChromosomeFromGenes(pc.Parent2),
	}
}
