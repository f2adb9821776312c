package approx

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/arlojanssen/communitypb/internal/pbcancel"
	"github.com/arlojanssen/communitypb/pbregistry"
)

// saRNG is a deterministic RNG factory: seed==0 resolves to a fixed
// default so a zero-value Options still behaves reproducibly.
const defaultSASeed int64 = 1

func saRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSASeed
	}
	return rand.New(rand.NewSource(seed))
}

// saAllocation is a single-budget candidate: a 0/1 inclusion vector plus
// its running value and cost, kept in sync incrementally as bits flip.
type saAllocation struct {
	bits  []int
	value int
	cost  int
}

func (a saAllocation) neighbour(rng *rand.Rand, costs, values []int) saAllocation {
	bits := append([]int(nil), a.bits...)
	idx := rng.Intn(len(bits))
	bits[idx] = 1 - bits[idx]

	sign := -1
	if bits[idx] == 1 {
		sign = 1
	}
	return saAllocation{
		bits:  bits,
		value: a.value + sign*values[idx],
		cost:  a.cost + sign*costs[idx],
	}
}

func toIndices(bits []int) []int {
	var out []int
	for i, b := range bits {
		if b == 1 {
			out = append(out, i)
		}
	}
	return out
}

// SimulatedAnnealing approximates single-budget 0/1 knapsack by annealing
// over the 0/1 inclusion lattice: starting from the empty allocation, a
// random bit is flipped to produce a neighbour each step; improving
// neighbours are always accepted, worsening ones accepted with
// probability e^(-deltaValue/T); T cools geometrically every
// temperature-length steps until it reaches the stopping temperature.
func SimulatedAnnealing(ctx context.Context, budget int, costs, values []int, opts pbregistry.Options) ([]int, int, error) {
	n := len(values)
	rng := saRNG(opts.Seed)
	c := pbcancel.New(ctx)

	current := saAllocation{bits: make([]int, n)}
	best := current

	temperature := opts.SAInitialTemperature
	for temperature > opts.SAStoppingTemperature {
		for step := 0; step < opts.SATemperatureLength; step++ {
			if c.Tick() {
				return nil, 0, ctx.Err()
			}

			neighbour := current.neighbour(rng, costs, values)
			if neighbour.cost > budget {
				continue
			}

			delta := neighbour.value - current.value
			if delta >= 0 {
				current = neighbour
				if current.value > best.value {
					best = current
				}
				continue
			}

			if rng.Float64() < math.Exp(float64(delta)/temperature) {
				current = neighbour
			}
		}
		temperature *= opts.SACoolingRatio
	}

	allocation := toIndices(best.bits)
	sort.Ints(allocation)
	return allocation, best.value, nil
}

// multiSaAllocation is SimulatedAnnealing's multi-dimension counterpart.
type multiSaAllocation struct {
	bits  []int
	value int
	cost  []int
}

func (a multiSaAllocation) neighbour(rng *rand.Rand, costs [][]int, values []int) multiSaAllocation {
	bits := append([]int(nil), a.bits...)
	idx := rng.Intn(len(bits))
	bits[idx] = 1 - bits[idx]

	sign := -1
	if bits[idx] == 1 {
		sign = 1
	}
	cost := append([]int(nil), a.cost...)
	for k := range cost {
		cost[k] += sign * costs[k][idx]
	}
	return multiSaAllocation{
		bits:  bits,
		value: a.value + sign*values[idx],
		cost:  cost,
	}
}

// MultiSimulatedAnnealing is SimulatedAnnealing's multi-dimension
// counterpart: a neighbour is invalid if it exceeds any budget dimension.
func MultiSimulatedAnnealing(ctx context.Context, budgets []int, costs [][]int, values []int, opts pbregistry.Options) ([]int, int, error) {
	n := len(values)
	d := len(budgets)
	rng := saRNG(opts.Seed)
	c := pbcancel.New(ctx)

	current := multiSaAllocation{bits: make([]int, n), cost: make([]int, d)}
	best := current

	temperature := opts.SAInitialTemperature
	for temperature > opts.SAStoppingTemperature {
		for step := 0; step < opts.SATemperatureLength; step++ {
			if c.Tick() {
				return nil, 0, ctx.Err()
			}

			neighbour := current.neighbour(rng, costs, values)
			invalid := false
			for k := 0; k < d; k++ {
				if neighbour.cost[k] > budgets[k] {
					invalid = true
					break
				}
			}
			if invalid {
				continue
			}

			delta := neighbour.value - current.value
			if delta >= 0 {
				current = neighbour
				if current.value > best.value {
					best = current
				}
				continue
			}

			if rng.Float64() < math.Exp(float64(delta)/temperature) {
				current = neighbour
			}
		}
		temperature *= opts.SACoolingRatio
	}

	allocation := toIndices(best.bits)
	sort.Ints(allocation)
	return allocation, best.value, nil
}
