package pbio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arlojanssen/communitypb/pbcore"
	"github.com/arlojanssen/communitypb/pbvote"
)

// ErrMissingBudget indicates the META section had no budget entry.
var ErrMissingBudget = errors.New("pbio: no budget found in file")

// ErrUnknownVoteType indicates the META section's vote_type was not one
// of approval, cumulative, scoring, ordinal.
var ErrUnknownVoteType = errors.New("pbio: unknown vote_type in file")

// ErrMalformedRow indicates a row did not have the expected number of
// fields for its section.
var ErrMalformedRow = errors.New("pbio: malformed row")

type projectRow struct {
	id   string
	cost []int
}

type voterRow struct {
	id     string
	votes  []int
	points []int
}

// Parser reads a .pb instance from a file path.
type Parser struct {
	path string
}

// NewParser returns a Parser reading from path.
func NewParser(path string) *Parser {
	return &Parser{path: path}
}

// MultiProblem parses the file into a multi-budget instance.
func (p *Parser) MultiProblem() (*pbcore.MultiProblem, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parse(file)
}

// SingleProblem parses the file and downcasts it to a single-budget
// instance using its first budget dimension.
func (p *Parser) SingleProblem() (*pbcore.SingleProblem, error) {
	problem, err := p.MultiProblem()
	if err != nil {
		return nil, err
	}
	return problem.Single(), nil
}

func parse(r io.Reader) (*pbcore.MultiProblem, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	var budget []int
	voteType := pbvote.VoteType("")

	var projects []projectRow
	var voters []voterRow

	section := ""
	var header []string

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		name := strings.ToLower(strings.TrimSpace(row[0]))
		switch name {
		case "meta", "projects", "votes":
			section = name
			header, err = reader.Read()
			if err != nil {
				return nil, err
			}
			continue
		}

		switch section {
		case "meta":
			if len(row) < 2 {
				continue
			}
			value := strings.TrimSpace(row[1])
			switch name {
			case "budget":
				budget, err = parseIntList(value)
				if err != nil {
					return nil, err
				}
			case "vote_type":
				voteType = pbvote.VoteType(strings.ToLower(value))
			}
		case "projects":
			if len(budget) == 0 {
				return nil, ErrMissingBudget
			}
			pr, err := parseProjectRow(row, header, len(budget))
			if err != nil {
				return nil, err
			}
			projects = append(projects, pr)
		case "votes":
			vr, err := parseVoterRow(row, header)
			if err != nil {
				return nil, err
			}
			voters = append(voters, vr)
		}
	}

	if len(budget) == 0 {
		return nil, ErrMissingBudget
	}
	if !validVoteType(voteType) {
		return nil, ErrUnknownVoteType
	}

	numProjects := len(projects)
	projectIDs := make([]string, numProjects)
	costs := make([][]int, len(budget))
	for dim := range costs {
		costs[dim] = make([]int, numProjects)
	}
	for i, pr := range projects {
		projectIDs[i] = pr.id
		for dim, c := range pr.cost {
			costs[dim][i] = c
		}
	}

	projectIndex := make(map[string]int, numProjects)
	for i, id := range projectIDs {
		projectIndex[id] = i
	}

	voterIDs := make([]string, len(voters))
	utilities := make([][]int, len(voters))
	for i, vr := range voters {
		voterIDs[i] = vr.id
		indices := make([]int, len(vr.votes))
		for j, pid := range vr.votes {
			idx, ok := projectIndex[strconv.Itoa(pid)]
			if !ok {
				return nil, fmt.Errorf("%w: voted project %d does not exist", ErrMalformedRow, pid)
			}
			indices[j] = idx
		}
		utility, err := pbvote.VoteToUtility(numProjects, voteType, indices, vr.points)
		if err != nil {
			return nil, err
		}
		utilities[i] = utility
	}

	return pbcore.NewMultiProblem(numProjects, len(voters), budget, costs, utilities, projectIDs, voterIDs)
}

func validVoteType(vt pbvote.VoteType) bool {
	switch vt {
	case pbvote.Approval, pbvote.Cumulative, pbvote.Scoring, pbvote.Ordinal:
		return true
	default:
		return false
	}
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedRow, p)
		}
		out[i] = v
	}
	return out, nil
}

func parseProjectRow(row, header []string, dimensions int) (projectRow, error) {
	if len(row) < 1 {
		return projectRow{}, ErrMalformedRow
	}
	pr := projectRow{id: strings.TrimSpace(row[0])}

	for i, key := range header[1:] {
		if i+1 >= len(row) {
			break
		}
		if strings.ToLower(strings.TrimSpace(key)) != "cost" {
			continue
		}
		cost, err := parseIntList(strings.TrimSpace(row[i+1]))
		if err != nil {
			return projectRow{}, err
		}
		pr.cost = cost
	}

	if len(pr.cost) != dimensions {
		return projectRow{}, fmt.Errorf("%w: project %s has %d cost dimensions, want %d", ErrMalformedRow, pr.id, len(pr.cost), dimensions)
	}
	return pr, nil
}

func parseVoterRow(row, header []string) (voterRow, error) {
	if len(row) < 1 {
		return voterRow{}, ErrMalformedRow
	}
	vr := voterRow{id: strings.TrimSpace(row[0])}

	for i, key := range header[1:] {
		if i+1 >= len(row) {
			break
		}
		value := strings.TrimSpace(row[i+1])
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "vote":
			if value == "" {
				continue
			}
			votes, err := parseIntList(value)
			if err != nil {
				return voterRow{}, err
			}
			vr.votes = votes
		case "points":
			if value == "" {
				continue
			}
			points, err := parseIntList(value)
			if err != nil {
				return voterRow{}, err
			}
			vr.points = points
		}
	}
	return vr, nil
}
