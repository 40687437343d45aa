package repository

import "time"

// Activation statuses. A record starts out relayed and moves to
// confirmed or failed once the activation receipt lands.
const (
	StatusRelayed   = "relayed"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

type Activation struct {
	ID               uint   `gorm:"primaryKey"`
	Staker           string `gorm:"size:42;not null;index"`                   // Celo address (0x + 40 hex)
	Group            string `gorm:"column:validator_group;size:42;not null"`  // validator group voted for
	VoteTxHash       string `gorm:"size:66;uniqueIndex;not null"`             // 0x + 64 hex chars
	ActivationTxHash string `gorm:"size:66;not null"`                         // hash of the relayed activation
	Value            string `gorm:"size:100;not null"`                        // vote value in wei (string to handle large numbers)
	Status           string `gorm:"size:16;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
