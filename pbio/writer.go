package pbio

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/arlojanssen/communitypb/pbcore"
)

// Writer writes a .pb instance to a file path.
type Writer struct {
	path string
}

// NewWriter returns a Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteSingle writes a single-budget instance, always emitting
// vote_type=scoring: the stored utility matrix is written out directly as
// each voter's (project, points) pairs, simplifying the round trip at the
// cost of the original vote type.
func (w *Writer) WriteSingle(problem *pbcore.SingleProblem) error {
	multi, err := multiFromSingle(problem)
	if err != nil {
		return err
	}
	return w.WriteMulti(multi)
}

// WriteMulti writes a multi-budget instance.
func (w *Writer) WriteMulti(problem *pbcore.MultiProblem) error {
	file, err := os.Create(w.path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = ';'
	defer writer.Flush()

	budget := problem.Budget()
	costs := problem.Costs()
	utilities := problem.Utilities()
	projects := problem.Projects()
	voters := problem.Voters()

	budgetStrs := make([]string, len(budget))
	for i, b := range budget {
		budgetStrs[i] = strconv.Itoa(b)
	}

	rows := [][]string{
		{"META"},
		{"key", "value"},
		{"budget", strings.Join(budgetStrs, ",")},
		{"vote_type", "scoring"},
		{"PROJECTS"},
		{"project_id", "cost"},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	for idx, project := range projects {
		dims := make([]string, len(costs))
		for dim := range costs {
			dims[dim] = strconv.Itoa(costs[dim][idx])
		}
		if err := writer.Write([]string{project.ID, strings.Join(dims, ",")}); err != nil {
			return err
		}
	}

	if err := writer.Write([]string{"VOTES"}); err != nil {
		return err
	}
	if err := writer.Write([]string{"voter_id", "vote", "points"}); err != nil {
		return err
	}

	for idx, voter := range voters {
		var votes []string
		var points []string
		for pIdx, utility := range utilities[idx] {
			if utility > 0 {
				votes = append(votes, projects[pIdx].ID)
				points = append(points, strconv.Itoa(utility))
			}
		}
		if err := writer.Write([]string{voter.ID, strings.Join(votes, ","), strings.Join(points, ",")}); err != nil {
			return err
		}
	}

	return nil
}

func multiFromSingle(problem *pbcore.SingleProblem) (*pbcore.MultiProblem, error) {
	return pbcore.NewMultiProblem(
		problem.NumProjects(),
		problem.NumVoters(),
		[]int{problem.Budget()},
		[][]int{problem.Costs()},
		problem.Utilities(),
		idsOf(problem.Projects()),
		voterIDsOf(problem.Voters()),
	)
}

func idsOf(projects []pbcore.Project) []string {
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}

func voterIDsOf(voters []pbcore.Voter) []string {
	ids := make([]string, len(voters))
	for i, v := range voters {
		ids[i] = v.ID
	}
	return ids
}
