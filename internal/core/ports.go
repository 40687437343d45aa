package core

import (
	"context"

	"github.com/Christiandike/celo-mondo/internal/celo"
	"github.com/Christiandike/celo-mondo/internal/repository"
	tokenIssuer "github.com/Christiandike/celo-mondo/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	SaveActivation(ctx context.Context, activation repository.Activation) error
	GetActivationByVoteTx(ctx context.Context, voteTxHash string) (repository.Activation, error)
	GetActivationByActivationTx(ctx context.Context, activationTxHash string) (repository.Activation, error)
	SetActivationStatus(ctx context.Context, activationTxHash string, status string) error
	GetAllActivations(ctx context.Context) ([]repository.Activation, error)
	GetActivationsByStaker(ctx context.Context, stakers []string) ([]repository.Activation, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	FetchVoteTransaction(ctx context.Context, hash string) (*celo.VoteTransaction, error)
	HasActivatablePendingVotes(ctx context.Context, account string) (bool, error)
	ActivateForAccount(ctx context.Context, group string, account string) (string, error)
}

//counterfeiter:generate -o fake -fake-name ConfirmationTracker . ConfirmationTracker
type ConfirmationTracker interface {
	Track(ctx context.Context, hash common.Hash, description string)
}

//counterfeiter:generate -o fake -fake-name RelayGuard . RelayGuard
type RelayGuard interface {
	Acquire(ctx context.Context, txHash string) (bool, error)
	Release(ctx context.Context, txHash string) error
}

//counterfeiter:generate -o fake -fake-name AuditPublisher . AuditPublisher
type AuditPublisher interface {
	Publish(ctx context.Context, event AuditEvent) error
}
