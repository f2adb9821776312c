package pbregistry

import "time"

// Default knobs, matching the defaults of the underlying algorithms.
const (
	// DefaultFPTASEpsilon is the default accuracy for FPTAS: output is
	// guaranteed within (1-epsilon) of optimal.
	DefaultFPTASEpsilon = 0.5

	// DefaultSAInitialTemperature is simulated annealing's starting temperature T0.
	DefaultSAInitialTemperature = 1.0

	// DefaultSATemperatureLength is the number of proposals evaluated per temperature level, L.
	DefaultSATemperatureLength = 50_000

	// DefaultSACoolingRatio is the multiplicative cooling factor alpha applied after each level.
	DefaultSACoolingRatio = 0.9

	// DefaultSAStoppingTemperature halts annealing once the temperature falls to or below it.
	DefaultSAStoppingTemperature = 0.5

	// DefaultGAPopulationSize is the genetic algorithm's population size P.
	DefaultGAPopulationSize = 200

	// DefaultGACrossoverRate is the probability p_c two parents are crossed over.
	DefaultGACrossoverRate = 0.8

	// DefaultGAMutationRate is the probability p_m a child's gene is flipped.
	DefaultGAMutationRate = 0.3

	// DefaultGAGenerations is the number of generations G the genetic algorithm runs.
	DefaultGAGenerations = 100
)

// Options configures a solve call: its wall-clock timeout, the RNG seed
// given to randomized algorithms, and the hyperparameters of FPTAS, SA,
// and GA. Zero value is not meaningful; use DefaultOptions() and override
// fields as needed.
type Options struct {
	// Timeout bounds the wall-clock duration of a solve call. Negative
	// means "no timeout", matching the dispatcher's timeout_seconds < 0
	// convention.
	Timeout time.Duration

	// Seed controls deterministic behavior of SA/GA's randomized steps.
	// The RNG is owned per call; Seed=0 selects a fixed default stream.
	Seed int64

	// FPTASEpsilon is the accuracy parameter for FPTAS, in (0, 1].
	FPTASEpsilon float64

	// SAInitialTemperature is simulated annealing's T0.
	SAInitialTemperature float64

	// SATemperatureLength is the number of proposals per temperature level, L.
	SATemperatureLength int

	// SACoolingRatio is the cooling factor alpha < 1 applied after each level.
	SACoolingRatio float64

	// SAStoppingTemperature halts annealing once T falls to or below it.
	SAStoppingTemperature float64

	// GAPopulationSize is the population size P.
	GAPopulationSize int

	// GACrossoverRate is the crossover probability p_c.
	GACrossoverRate float64

	// GAMutationRate is the mutation probability p_m.
	GAMutationRate float64

	// GAGenerations is the number of generations G.
	GAGenerations int
}

// DefaultOptions returns a fully populated Options struct with the
// hyperparameter defaults specified for FPTAS, simulated annealing, and
// the genetic algorithm, and no timeout.
func DefaultOptions() Options {
	return Options{
		Timeout:               -1,
		Seed:                  0,
		FPTASEpsilon:          DefaultFPTASEpsilon,
		SAInitialTemperature:  DefaultSAInitialTemperature,
		SATemperatureLength:   DefaultSATemperatureLength,
		SACoolingRatio:        DefaultSACoolingRatio,
		SAStoppingTemperature: DefaultSAStoppingTemperature,
		GAPopulationSize:      DefaultGAPopulationSize,
		GACrossoverRate:       DefaultGACrossoverRate,
		GAMutationRate:        DefaultGAMutationRate,
		GAGenerations:         DefaultGAGenerations,
	}
}
