package payload

import (
	"regexp"

	"github.com/Christiandike/celo-mondo/internal/core"

	"github.com/jellydator/validation"
)

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRegex  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// ActivationRequest is the body of the stake activation endpoint.
type ActivationRequest struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash"`
}

func (a ActivationRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&a.TransactionHash, validation.Required, validation.Match(txHashRegex)),
	)
}

func (a ActivationRequest) ToMessage() core.ActivationMessage {
	return core.ActivationMessage{
		Address:         a.Address,
		TransactionHash: a.TransactionHash,
	}
}

// ActivationsQuery carries the optional staker filter of the activation
// listing endpoint.
type ActivationsQuery struct {
	Staker string
}

func (q ActivationsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Staker, validation.Match(addressRegex)),
	)
}
