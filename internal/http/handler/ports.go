package handler

import (
	"context"
	"net/http"

	"github.com/Christiandike/celo-mondo/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RelayService . RelayService
type RelayService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ActivateStake(ctx context.Context, msg core.ActivationMessage) (core.ActivationRecord, error)
	GetActivations(ctx context.Context, token string, staker string) ([]core.ActivationRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
