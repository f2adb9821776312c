package exact

import (
	"context"
	"strconv"

	gomilp "github.com/jjhbw/GoMILP"
)

// ILP solves single-budget 0/1 knapsack as a binary integer program: one
// binary variable per project, objective max sum(values[i]*x[i]),
// constraint sum(costs[i]*x[i]) <= budget. Delegated to
// github.com/jjhbw/GoMILP's branch-and-bound solver. A solution component
// x[i] >= 0.5 is treated as included.
func ILP(ctx context.Context, budget int, costs, values []int) ([]int, int, error) {
	if ctx.Err() != nil {
		return nil, 0, ctx.Err()
	}

	problem := gomilp.NewProblem()
	problem.Maximize()

	vars := make([]*gomilp.Variable, len(values))
	for i := range values {
		v := problem.AddVariable(strconv.Itoa(i))
		v.SetCoeff(float64(values[i])).IsInteger().UpperBound(1).LowerBound(0)
		vars[i] = v
	}

	constraint := problem.AddConstraint().SmallerThanOrEqualTo(float64(budget))
	for i := range values {
		constraint.AddExpression(float64(costs[i]), vars[i])
	}

	solution, err := problem.Solve()
	if err != nil {
		return nil, 0, err
	}

	return allocationFromSolution(solution, values)
}

// MultiILP is ILP's multi-dimension counterpart: one <= constraint per
// budget dimension.
func MultiILP(ctx context.Context, budgets []int, costs [][]int, values []int) ([]int, int, error) {
	if ctx.Err() != nil {
		return nil, 0, ctx.Err()
	}

	problem := gomilp.NewProblem()
	problem.Maximize()

	vars := make([]*gomilp.Variable, len(values))
	for i := range values {
		v := problem.AddVariable(strconv.Itoa(i))
		v.SetCoeff(float64(values[i])).IsInteger().UpperBound(1).LowerBound(0)
		vars[i] = v
	}

	for k, budget := range budgets {
		constraint := problem.AddConstraint().SmallerThanOrEqualTo(float64(budget))
		for i := range values {
			constraint.AddExpression(float64(costs[k][i]), vars[i])
		}
	}

	solution, err := problem.Solve()
	if err != nil {
		return nil, 0, err
	}

	return allocationFromSolution(solution, values)
}

func allocationFromSolution(solution *gomilp.Solution, values []int) ([]int, int, error) {
	var allocation []int
	value := 0
	for i := range values {
		x, err := solution.GetValueFor(strconv.Itoa(i))
		if err != nil {
			return nil, 0, err
		}
		if x >= 0.5 {
			allocation = append(allocation, i)
			value += values[i]
		}
	}
	return allocation, value, nil
}
