package approx

import (
	"context"
	"sort"

	"github.com/arlojanssen/communitypb/internal/pbcancel"
	"github.com/arlojanssen/communitypb/pbregistry"
)

// gaFitness scores a chromosome (a 0/1 inclusion vector); chromosomes that
// exceed their budget are given zero fitness, making them unfit for
// tournament selection.
type gaFitness func(chromosome []int) int

// gaRun drives the shared evolutionary loop: tournament selection (size
// 2), single-point crossover, single-bit mutation, for numGenerations
// generations over a population of numProjects-length chromosomes.
func gaRun(ctx context.Context, numProjects int, fitness gaFitness, opts pbregistry.Options) ([]int, int, error) {
	rng := saRNG(opts.Seed)
	c := pbcancel.New(ctx)

	population := make([][]int, opts.GAPopulationSize)
	for i := range population {
		population[i] = make([]int, numProjects)
	}

	tournament := func() []int {
		a := population[rng.Intn(len(population))]
		b := population[rng.Intn(len(population))]
		if fitness(a) >= fitness(b) {
			return a
		}
		return b
	}

	crossover := func(a, b []int) ([]int, []int) {
		if rng.Float64() > opts.GACrossoverRate || numProjects < 2 {
			return append([]int(nil), a...), append([]int(nil), b...)
		}
		point := 1 + rng.Intn(numProjects-1)
		childA := append(append([]int(nil), a[:point]...), b[point:]...)
		childB := append(append([]int(nil), b[:point]...), a[point:]...)
		return childA, childB
	}

	mutate := func(chromosome []int) []int {
		if rng.Float64() > opts.GAMutationRate {
			return chromosome
		}
		point := rng.Intn(numProjects)
		chromosome[point] = 1 - chromosome[point]
		return chromosome
	}

	for gen := 0; gen < opts.GAGenerations; gen++ {
		if c.Tick() {
			return nil, 0, ctx.Err()
		}

		offspring := make([][]int, 0, len(population))
		for len(offspring) < len(population) {
			parentA := tournament()
			parentB := tournament()
			childA, childB := crossover(parentA, parentB)
			offspring = append(offspring, mutate(childA), mutate(childB))
		}
		population = offspring
	}

	bestIdx := 0
	bestFitness := fitness(population[0])
	for i := 1; i < len(population); i++ {
		if f := fitness(population[i]); f > bestFitness {
			bestFitness = f
			bestIdx = i
		}
	}

	if bestFitness == 0 {
		return nil, 0, nil
	}

	allocation := toIndices(population[bestIdx])
	sort.Ints(allocation)
	return allocation, bestFitness, nil
}

// GeneticAlgorithm approximates single-budget 0/1 knapsack by modelling
// allocations as chromosomes and projects as genes, evolving a population
// via tournament selection, single-point crossover, and bit mutation.
func GeneticAlgorithm(ctx context.Context, budget int, costs, values []int, opts pbregistry.Options) ([]int, int, error) {
	fitness := func(chromosome []int) int {
		cost, value := 0, 0
		for i, bit := range chromosome {
			if bit == 1 {
				cost += costs[i]
				value += values[i]
			}
		}
		if cost > budget {
			return 0
		}
		return value
	}
	return gaRun(ctx, len(values), fitness, opts)
}

// MultiGeneticAlgorithm is GeneticAlgorithm's multi-dimension counterpart:
// a chromosome exceeding any budget dimension has zero fitness.
func MultiGeneticAlgorithm(ctx context.Context, budgets []int, costs [][]int, values []int, opts pbregistry.Options) ([]int, int, error) {
	fitness := func(chromosome []int) int {
		cost := make([]int, len(budgets))
		value := 0
		for i, bit := range chromosome {
			if bit == 1 {
				for k := range budgets {
					cost[k] += costs[k][i]
				}
				value += values[i]
			}
		}
		for k, budget := range budgets {
			if cost[k] > budget {
				return 0
			}
		}
		return value
	}
	return gaRun(ctx, len(values), fitness, opts)
}
