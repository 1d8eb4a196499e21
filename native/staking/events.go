package staking

// Event types emitted by the staking pallet.
const (
	// TypeStaked captures a new stake bonded to a validator.
	TypeStaked = "staking.staked"
	// TypeUnstaked captures a stake released after the lock-up period.
	TypeUnstaked = "staking.unstaked"
	// TypeValidatorAdded captures a validator joining the registry.
	TypeValidatorAdded = "staking.validatorAdded"
	// TypeValidatorRemoved captures a validator leaving the registry.
	TypeValidatorRemoved = "staking.validatorRemoved"
	// TypeRewardsPaid captures a reward accrual net of commission.
	TypeRewardsPaid = "staking.rewardsPaid"
	// TypeSlashApplied captures a stake reduction imposed on an account.
	TypeSlashApplied = "staking.slashApplied"
)

// Event represents a structured staking state change. The pallet appends
// events to an internal queue; the surrounding runtime drains the queue once
// per block.
type Event interface {
	EventType() string
}

// Staked records who bonded how much to which validator.
type Staked[AccountID any, Balance any] struct {
	Who       AccountID
	Amount    Balance
	Validator AccountID
}

// EventType satisfies the Event interface.
func (Staked[AccountID, Balance]) EventType() string { return TypeStaked }

// Unstaked records a released stake.
type Unstaked[AccountID any, Balance any] struct {
	Who    AccountID
	Amount Balance
}

// EventType satisfies the Event interface.
func (Unstaked[AccountID, Balance]) EventType() string { return TypeUnstaked }

// ValidatorAdded records a validator registration.
type ValidatorAdded[AccountID any] struct {
	Validator AccountID
}

// EventType satisfies the Event interface.
func (ValidatorAdded[AccountID]) EventType() string { return TypeValidatorAdded }

// ValidatorRemoved records a validator deregistration.
type ValidatorRemoved[AccountID any] struct {
	Validator AccountID
}

// EventType satisfies the Event interface.
func (ValidatorRemoved[AccountID]) EventType() string { return TypeValidatorRemoved }

// RewardsPaid records a reward accrual for a staker.
type RewardsPaid[AccountID any, Balance any] struct {
	Who    AccountID
	Amount Balance
}

// EventType satisfies the Event interface.
func (RewardsPaid[AccountID, Balance]) EventType() string { return TypeRewardsPaid }

// SlashApplied records a punitive stake reduction.
type SlashApplied[AccountID any, Balance any] struct {
	Who    AccountID
	Amount Balance
}

// EventType satisfies the Event interface.
func (SlashApplied[AccountID, Balance]) EventType() string { return TypeSlashApplied }
