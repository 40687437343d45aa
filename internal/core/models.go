package core

import "time"

// ActivationMessage is a request to activate the pending votes a staker
// cast in the given vote transaction.
type ActivationMessage struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ActivationRecord is the API view of a relayed activation.
type ActivationRecord struct {
	Staker           string    `json:"staker"`
	Group            string    `json:"group"`
	VoteTxHash       string    `json:"voteTransactionHash"`
	ActivationTxHash string    `json:"activationTransactionHash"`
	Value            string    `json:"value"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Audit actions published for every activation state change.
const (
	AuditActivationRelayed   = "activation_relayed"
	AuditActivationConfirmed = "activation_confirmed"
	AuditActivationFailed    = "activation_failed"
)

type AuditEvent struct {
	Action           string    `json:"action"`
	Staker           string    `json:"staker,omitempty"`
	Group            string    `json:"group,omitempty"`
	VoteTxHash       string    `json:"voteTransactionHash,omitempty"`
	ActivationTxHash string    `json:"activationTransactionHash,omitempty"`
	Reason           string    `json:"reason,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}
