package pbvote

import "errors"

// Sentinel errors for vote conversion. Matched with errors.Is.
var (
	// ErrRowWidth indicates a utility row has the wrong number of entries.
	ErrRowWidth = errors.New("pbvote: utility row length does not match num_projects")

	// ErrVoteOutOfRange indicates a vote referenced a project index outside [0, num_projects).
	ErrVoteOutOfRange = errors.New("pbvote: vote index out of range")

	// ErrTooManyVotes indicates more votes were submitted than there are projects.
	ErrTooManyVotes = errors.New("pbvote: more votes submitted than num_projects")

	// ErrDuplicateVote indicates the same project was voted for more than once by one voter.
	ErrDuplicateVote = errors.New("pbvote: duplicate project in a single voter's votes")

	// ErrVoteLengthBounds indicates the vote count violates min_vote_length/max_vote_length.
	ErrVoteLengthBounds = errors.New("pbvote: vote length violates min/max vote length bounds")

	// ErrUnknownVoteType indicates vote_type is not one of approval, cumulative, scoring, ordinal.
	ErrUnknownVoteType = errors.New("pbvote: unknown vote type")

	// ErrPointsMismatch indicates points is missing or its length does not match votes.
	ErrPointsMismatch = errors.New("pbvote: points must be supplied with one entry per vote for cumulative/scoring voting")
)

// VoteType names a ballot format a single voter's ballot may be expressed
// in. Cumulative and scoring share the same conversion rule.
type VoteType string

// Supported vote types.
const (
	Approval   VoteType = "approval"
	Cumulative VoteType = "cumulative"
	Scoring    VoteType = "scoring"
	Ordinal    VoteType = "ordinal"
)

func validVoteType(vt VoteType) bool {
	switch vt {
	case Approval, Cumulative, Scoring, Ordinal:
		return true
	default:
		return false
	}
}

func validateVotes(numProjects int, votes []int) error {
	if len(votes) > numProjects {
		return ErrTooManyVotes
	}
	seen := make(map[int]struct{}, len(votes))
	for _, v := range votes {
		if v < 0 || v >= numProjects {
			return ErrVoteOutOfRange
		}
		if _, dup := seen[v]; dup {
			return ErrDuplicateVote
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Aggregate sums voter utilities into per-project aggregated values:
// values[i] = sum over voters of utilities[v][i].
func Aggregate(numProjects int, utilities [][]int) ([]int, error) {
	values := make([]int, numProjects)
	for _, row := range utilities {
		if len(row) != numProjects {
			return nil, ErrRowWidth
		}
		for i, u := range row {
			values[i] += u
		}
	}
	return values, nil
}

// OrdinalToUtility converts one voter's ranked preferences (most to least
// preferred, given as project indexes) into a utility vector over all
// numProjects projects. minVoteLength/maxVoteLength of -1 mean "no bound".
//
// When minVoteLength == maxVoteLength (and non-negative), a Borda count is
// applied: the least-preferred ranked project receives 1, the next 2, and
// so on up to len(votes) for the most preferred. Otherwise a shifted-Borda
// score is used: with u unsubmitted ranks (the smaller of numProjects and
// maxVoteLength, minus len(votes)), the least-preferred ranked project
// receives 1+(1+2+...+u) and each more-preferred one 1 more, so a shorter
// ballot gives its projects larger scores than a full one.
func OrdinalToUtility(numProjects int, votes []int, minVoteLength, maxVoteLength int) ([]int, error) {
	if err := validateVotes(numProjects, votes); err != nil {
		return nil, err
	}

	if minVoteLength >= 0 && minVoteLength > len(votes) {
		return nil, ErrVoteLengthBounds
	}
	if maxVoteLength >= 0 && maxVoteLength < len(votes) {
		return nil, ErrVoteLengthBounds
	}

	if minVoteLength == -1 {
		minVoteLength = 0
	}
	if maxVoteLength == -1 {
		maxVoteLength = numProjects
	}

	utility := make([]int, numProjects)

	if minVoteLength == maxVoteLength {
		count := 1
		for i := len(votes) - 1; i >= 0; i-- {
			utility[votes[i]] = count
			count++
		}
		return utility, nil
	}

	maxUtility := numProjects
	if maxVoteLength < maxUtility {
		maxUtility = maxVoteLength
	}
	notSubmitted := maxUtility - len(votes)
	currentUtility := 1
	for k := 1; k <= notSubmitted; k++ {
		currentUtility += k
	}

	for i := len(votes) - 1; i >= 0; i-- {
		utility[votes[i]] = currentUtility
		currentUtility++
	}
	return utility, nil
}

// VoteToUtility converts one voter's ballot, expressed in voteType's
// format, into a utility vector over all numProjects projects. points is
// required (and must match len(votes)) for Cumulative and Scoring; it is
// ignored otherwise.
func VoteToUtility(numProjects int, voteType VoteType, votes []int, points []int) ([]int, error) {
	if !validVoteType(voteType) {
		return nil, ErrUnknownVoteType
	}
	if err := validateVotes(numProjects, votes); err != nil {
		return nil, err
	}

	if voteType == Cumulative || voteType == Scoring {
		if len(points) != len(votes) {
			return nil, ErrPointsMismatch
		}
	}

	utility := make([]int, numProjects)

	switch voteType {
	case Approval:
		for _, v := range votes {
			utility[v] = 1
		}
		return utility, nil
	case Cumulative, Scoring:
		for i, v := range votes {
			utility[v] = points[i]
		}
		return utility, nil
	case Ordinal:
		return OrdinalToUtility(numProjects, votes, -1, -1)
	}

	return utility, nil
}
