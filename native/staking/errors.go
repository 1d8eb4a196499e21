package staking

import stderrors "errors"

var (
	// ErrInsufficientBalance rejects a stake the balance oracle cannot cover.
	ErrInsufficientBalance = stderrors.New("staking: insufficient balance to stake")
	// ErrNotStaked signals an operation on an account with no active stake.
	ErrNotStaked = stderrors.New("staking: account is not staking")
	// ErrAlreadyStaked rejects a second stake by an account already staking.
	ErrAlreadyStaked = stderrors.New("staking: account is already staking")
	// ErrMinimumStakeNotMet rejects a stake below the configured minimum.
	ErrMinimumStakeNotMet = stderrors.New("staking: minimum stake amount not met")
	// ErrInvalidValidator signals a missing, inactive, or out-of-range validator.
	ErrInvalidValidator = stderrors.New("staking: invalid validator")
	// ErrTooManyValidators rejects registration beyond the registry capacity.
	ErrTooManyValidators = stderrors.New("staking: too many validators")
	// ErrNotValidator signals removal of an account that is not registered.
	ErrNotValidator = stderrors.New("staking: account is not a validator")
	// ErrAlreadyValidator rejects a duplicate validator registration.
	ErrAlreadyValidator = stderrors.New("staking: account is already a validator")
	// ErrRewardCalculation signals checked arithmetic overflowing while
	// accruing stake or computing rewards.
	ErrRewardCalculation = stderrors.New("staking: error calculating rewards")
	// ErrUnstakingPeriodNotMet rejects an unstake before the lock-up elapses.
	ErrUnstakingPeriodNotMet = stderrors.New("staking: unstaking period not met")
)
