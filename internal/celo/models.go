package celo

import "time"

// VoteCast is the decoded ValidatorGroupVoteCast event of a vote
// transaction. Value is the vote amount in wei.
type VoteCast struct {
	Account string
	Group   string
	Value   string
}

type VoteTransaction struct {
	Hash        string
	From        string
	To          string
	Succeeded   bool
	BlockNumber uint64
	BlockTime   time.Time
	Vote        *VoteCast // nil when the transaction emitted no vote event
}
