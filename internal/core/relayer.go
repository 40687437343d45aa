package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Christiandike/celo-mondo/internal/celo"
	"github.com/Christiandike/celo-mondo/internal/metrics"
	"github.com/Christiandike/celo-mondo/internal/repository"
	tokenIssuer "github.com/Christiandike/celo-mondo/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrAlreadyActivated error = errors.New("activation already relayed for this vote transaction")
var ErrRelayInProgress error = errors.New("a relay for this vote transaction is already in progress")
var ErrVoteTxFailed error = errors.New("vote transaction reverted")
var ErrSenderMismatch error = errors.New("vote transaction was not sent by the staker address")
var ErrVoteTooOld error = errors.New("vote transaction is older than three days")
var ErrVoteNotCast error = errors.New("transaction emitted no vote cast event")
var ErrVoterMismatch error = errors.New("vote cast event does not belong to the staker address")
var ErrNothingToActivate error = errors.New("staker has no activatable pending votes")

const (
	maxVoteAge            = 3 * 24 * time.Hour
	tokenTTL              = 24 * time.Hour
	activationDescription = "stake activation"
)

// Relayer verifies stake activation requests against the chain and relays
// the activation transaction with the server held key.
type Relayer struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	chain     ChainService
	tracker   ConfirmationTracker
	guard     RelayGuard
	audit     AuditPublisher
	metrics   *metrics.RelayerMetrics
}

// NewRelayer is a constructor function for the Relayer type.
func NewRelayer(
	logger *zap.SugaredLogger,
	repo Repository,
	jwt JWTIssuer,
	chain ChainService,
	tracker ConfirmationTracker,
	guard RelayGuard,
	audit AuditPublisher,
	relayerMetrics *metrics.RelayerMetrics,
) *Relayer {
	return &Relayer{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		chain:     chain,
		tracker:   tracker,
		guard:     guard,
		audit:     audit,
		metrics:   relayerMetrics,
	}
}

// Authenticate checks the provided username and password against the database.
// If the credentials are valid, it generates a JWT token for the user.
func (r *Relayer) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := r.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Username: user.Username,
		Subject:  user.ID,
		TTL:      tokenTTL,
	}
	token := r.jwtIssuer.Generate(tokenInfo)
	signed, err := r.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ActivateStake verifies that the staker cast validator group votes in the
// given transaction and relays one activateForAccount call on their behalf.
// Every verification failure is terminal for the request; only a vote whose
// previous activation attempt failed may be relayed again.
func (r *Relayer) ActivateStake(ctx context.Context, msg ActivationMessage) (ActivationRecord, error) {
	ctx, span := otel.Tracer("mondo/core").Start(ctx, "relayer.activate_stake",
		trace.WithAttributes(
			attribute.String("staker", msg.Address),
			attribute.String("vote_tx_hash", msg.TransactionHash),
		))
	defer span.End()

	staker := common.HexToAddress(msg.Address).Hex()
	voteTxHash := common.HexToHash(msg.TransactionHash).Hex()

	// A failed relay is retryable; any other existing row is final for the vote.
	existing, err := r.repo.GetActivationByVoteTx(ctx, voteTxHash)
	if err == nil && existing.Status != repository.StatusFailed {
		r.metrics.RejectedActivationRequests.Inc()
		return ActivationRecord{}, ErrAlreadyActivated
	}
	if err != nil && !errors.Is(err, repository.ErrActivationNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.metrics.UnexpectedErrors.Inc()
		return ActivationRecord{}, fmt.Errorf("look up activation: %w", err)
	}

	acquired, err := r.guard.Acquire(ctx, voteTxHash)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.metrics.UnexpectedErrors.Inc()
		return ActivationRecord{}, fmt.Errorf("acquire relay slot: %w", err)
	}
	if !acquired {
		r.metrics.RejectedActivationRequests.Inc()
		return ActivationRecord{}, ErrRelayInProgress
	}

	vote, err := r.verifyVote(ctx, staker, voteTxHash)
	if err != nil {
		r.releaseSlot(ctx, voteTxHash)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.metrics.RejectedActivationRequests.Inc()
		return ActivationRecord{}, err
	}

	r.metrics.ValidActivationRequests.Inc()
	r.logs.Infow("vote transaction verified", "staker", staker, "group", vote.Group, "vote_tx_hash", voteTxHash)

	// Once the relayer commits to sending, a client disconnect must not
	// abort the send or the bookkeeping that follows it.
	sendCtx := context.WithoutCancel(ctx)

	hash, err := r.chain.ActivateForAccount(sendCtx, vote.Group, staker)
	if err != nil {
		r.releaseSlot(sendCtx, voteTxHash)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.metrics.UnexpectedErrors.Inc()
		return ActivationRecord{}, fmt.Errorf("relay activation: %w", err)
	}
	activationTxHash := common.HexToHash(hash)

	activation := repository.Activation{
		Staker:           staker,
		Group:            vote.Group,
		VoteTxHash:       voteTxHash,
		ActivationTxHash: activationTxHash.Hex(),
		Value:            vote.Value,
		Status:           repository.StatusRelayed,
	}
	if err := r.repo.SaveActivation(sendCtx, activation); err != nil {
		// The activation is already on chain, so a lost row must not
		// fail the request.
		r.logs.Errorw("saving activation record", "vote_tx_hash", voteTxHash, "error", err)
		r.metrics.UnexpectedErrors.Inc()
	}

	r.metrics.ActivationsRelayed.Inc()
	r.publishAudit(sendCtx, AuditEvent{
		Action:           AuditActivationRelayed,
		Staker:           staker,
		Group:            vote.Group,
		VoteTxHash:       voteTxHash,
		ActivationTxHash: activationTxHash.Hex(),
		Timestamp:        time.Now().UTC(),
	})

	// The confirmation callback updates the row written above, so tracking
	// must not start before the save.
	r.tracker.Track(sendCtx, activationTxHash, activationDescription)

	r.logs.Infow("stake activation relayed",
		"staker", staker,
		"group", vote.Group,
		"vote_tx_hash", voteTxHash,
		"activation_tx_hash", activationTxHash.Hex(),
	)

	return ActivationRecord{
		Staker:           staker,
		Group:            vote.Group,
		VoteTxHash:       voteTxHash,
		ActivationTxHash: activationTxHash.Hex(),
		Value:            vote.Value,
		Status:           repository.StatusRelayed,
	}, nil
}

// MarkActivationConfirmed records that the activation transaction landed
// successfully on chain. Invoked by the transaction watcher callback.
func (r *Relayer) MarkActivationConfirmed(ctx context.Context, activationTxHash string) {
	if err := r.repo.SetActivationStatus(ctx, activationTxHash, repository.StatusConfirmed); err != nil {
		r.logs.Errorw("marking activation confirmed", "activation_tx_hash", activationTxHash, "error", err)
		r.metrics.UnexpectedErrors.Inc()
		return
	}

	r.metrics.ActivationsConfirmed.Inc()

	event := AuditEvent{
		Action:           AuditActivationConfirmed,
		ActivationTxHash: activationTxHash,
		Timestamp:        time.Now().UTC(),
	}
	if activation, err := r.repo.GetActivationByActivationTx(ctx, activationTxHash); err == nil {
		event.Staker = activation.Staker
		event.Group = activation.Group
		event.VoteTxHash = activation.VoteTxHash
	}
	r.publishAudit(ctx, event)

	r.logs.Infow("stake activation confirmed", "activation_tx_hash", activationTxHash)
}

// MarkActivationFailed records that the activation transaction reverted or
// was never mined. Invoked by the transaction watcher callback.
func (r *Relayer) MarkActivationFailed(ctx context.Context, activationTxHash string, failure error) {
	if err := r.repo.SetActivationStatus(ctx, activationTxHash, repository.StatusFailed); err != nil {
		r.logs.Errorw("marking activation failed", "activation_tx_hash", activationTxHash, "error", err)
		r.metrics.UnexpectedErrors.Inc()
		return
	}

	r.metrics.ActivationsFailed.Inc()

	event := AuditEvent{
		Action:           AuditActivationFailed,
		ActivationTxHash: activationTxHash,
		Reason:           failure.Error(),
		Timestamp:        time.Now().UTC(),
	}
	if activation, err := r.repo.GetActivationByActivationTx(ctx, activationTxHash); err == nil {
		event.Staker = activation.Staker
		event.Group = activation.Group
		event.VoteTxHash = activation.VoteTxHash
		// Free the relay slot so the vote can be retried without
		// waiting out the guard TTL.
		r.releaseSlot(ctx, activation.VoteTxHash)
	}
	r.publishAudit(ctx, event)

	r.logs.Errorw("stake activation failed", "activation_tx_hash", activationTxHash, "error", failure)
}

// GetActivations returns stored activations, optionally narrowed to a single
// staker address. The caller must present a valid operator token.
func (r *Relayer) GetActivations(ctx context.Context, token string, staker string) ([]ActivationRecord, error) {
	claims, err := r.jwtIssuer.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("validate jwt token: %w", err)
	}

	username := claims["username"].(string)
	r.logs.Infow("listing activations", "username", username, "staker", staker)

	var activations []repository.Activation
	if staker == "" {
		activations, err = r.repo.GetAllActivations(ctx)
	} else {
		activations, err = r.repo.GetActivationsByStaker(ctx, []string{common.HexToAddress(staker).Hex()})
	}
	if err != nil {
		return nil, fmt.Errorf("get activations: %w", err)
	}

	return r.activationsToRecords(activations), nil
}

func (r *Relayer) verifyVote(ctx context.Context, staker string, voteTxHash string) (*celo.VoteCast, error) {
	vote, err := r.chain.FetchVoteTransaction(ctx, voteTxHash)
	if err != nil {
		return nil, fmt.Errorf("fetch vote transaction: %w", err)
	}

	if !vote.Succeeded {
		return nil, ErrVoteTxFailed
	}
	if !strings.EqualFold(vote.From, staker) {
		return nil, ErrSenderMismatch
	}
	if time.Since(vote.BlockTime) > maxVoteAge {
		return nil, ErrVoteTooOld
	}
	if vote.Vote == nil {
		return nil, ErrVoteNotCast
	}
	if !strings.EqualFold(vote.Vote.Account, staker) {
		return nil, ErrVoterMismatch
	}

	activatable, err := r.chain.HasActivatablePendingVotes(ctx, staker)
	if err != nil {
		return nil, fmt.Errorf("check activatable votes: %w", err)
	}
	if !activatable {
		return nil, ErrNothingToActivate
	}

	return vote.Vote, nil
}

func (r *Relayer) releaseSlot(ctx context.Context, voteTxHash string) {
	if err := r.guard.Release(ctx, voteTxHash); err != nil {
		r.logs.Errorw("releasing relay slot", "vote_tx_hash", voteTxHash, "error", err)
	}
}

func (r *Relayer) publishAudit(ctx context.Context, event AuditEvent) {
	if err := r.audit.Publish(ctx, event); err != nil {
		r.logs.Errorw("publishing audit event", "action", event.Action, "activation_tx_hash", event.ActivationTxHash, "error", err)
	}
}

func (r *Relayer) activationsToRecords(activations []repository.Activation) []ActivationRecord {
	records := make([]ActivationRecord, len(activations))
	for i, activation := range activations {
		records[i] = ActivationRecord{
			Staker:           activation.Staker,
			Group:            activation.Group,
			VoteTxHash:       activation.VoteTxHash,
			ActivationTxHash: activation.ActivationTxHash,
			Value:            activation.Value,
			Status:           activation.Status,
			CreatedAt:        activation.CreatedAt,
		}
	}
	return records
}
