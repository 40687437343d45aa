package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Christiandike/celo-mondo/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       error = errors.New("user not found")
	ErrActivationNotFound error = errors.New("activation not found")
)

type ActivationRepository struct {
	db Storage
}

func NewActivationRepository(db Storage) *ActivationRepository {
	return &ActivationRepository{
		db: db,
	}
}

func (r *ActivationRepository) MigrateAndSeed(ctx context.Context) error {

	err := r.db.MigrateTable(&Activation{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "grace",
			PasswordHash: "$2a$10$gEsDqKg6xEVT7.YAj5dTZ.fooDQqQf4kNYZxnvrYl.OQyCaqQND6q",
		},
		{
			ID:           uuid.NewString(),
			Username:     "heidi",
			PasswordHash: "$2a$10$ozqzoJOyCOpJOyVK2PVIx.iR7FkcraAQB3rY14ct3axcoBKtB.NDC",
		},
		{
			ID:           uuid.NewString(),
			Username:     "ivan",
			PasswordHash: "$2a$10$WPjI6Un5gO4rfYVESOElHO18hCoDKEbHX.T1qFs0F5OTYoufrHcKK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "judy",
			PasswordHash: "$2a$10$Jk8NvHFstGUfiylBdvNhmuPO.7tcp11m44taLTLBgh6tWFC02iTR2",
		},
	}
	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

// SaveActivation stores the outcome of the latest relay for a vote. The vote
// hash is unique, so relaying a vote again after a failure replaces the old row.
func (r *ActivationRepository) SaveActivation(ctx context.Context, activation Activation) error {
	err := r.db.UpsertBy(ctx, "vote_tx_hash", &activation)
	if err != nil {
		return fmt.Errorf("save activation: %w", err)
	}

	return nil
}

func (r *ActivationRepository) GetActivationByVoteTx(ctx context.Context, voteTxHash string) (Activation, error) {
	var activation Activation

	err := r.db.GetOneBy(ctx, "vote_tx_hash", voteTxHash, &activation)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Activation{}, ErrActivationNotFound
		}
		return Activation{}, fmt.Errorf("get activation by vote transaction: %w", err)
	}

	return activation, nil
}

func (r *ActivationRepository) GetActivationByActivationTx(ctx context.Context, activationTxHash string) (Activation, error) {
	var activation Activation

	err := r.db.GetOneBy(ctx, "activation_tx_hash", activationTxHash, &activation)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Activation{}, ErrActivationNotFound
		}
		return Activation{}, fmt.Errorf("get activation by activation transaction: %w", err)
	}

	return activation, nil
}

func (r *ActivationRepository) SetActivationStatus(ctx context.Context, activationTxHash string, status string) error {
	updates := map[string]any{"status": status}

	err := r.db.UpdateBy(ctx, &Activation{}, "activation_tx_hash", activationTxHash, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrActivationNotFound
		}
		return fmt.Errorf("set activation status: %w", err)
	}

	return nil
}

func (r *ActivationRepository) GetAllActivations(ctx context.Context) ([]Activation, error) {
	activations := []Activation{}
	err := r.db.GetAll(ctx, &activations)
	if err != nil {
		return nil, fmt.Errorf("get all activations: %w", err)
	}

	return activations, nil
}

func (r *ActivationRepository) GetActivationsByStaker(ctx context.Context, stakers []string) ([]Activation, error) {
	activations := []Activation{}
	err := r.db.GetAllBy(ctx, "staker", stakers, &activations)
	if err != nil {
		return nil, fmt.Errorf("get activations by staker: %w", err)
	}

	return activations, nil
}

func (r *ActivationRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
