// Package pbio reads and writes the semicolon-delimited participatory
// budgeting text format (http://pabulib.org/format): a META section with
// budget(s) and vote_type, a PROJECTS section with per-project cost(s),
// and a VOTES section with each voter's raw vote.
package pbio
