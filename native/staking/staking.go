// Package staking implements the staking pallet: validator registration,
// per-account stake records, and block-based reward accrual net of validator
// commission. The pallet tracks which funds are locked; debiting and
// crediting the spendable balance is the caller's responsibility, which keeps
// this module decoupled from the balances ledger.
package staking

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"microchain/numeric"
)

// rewardScale is the fixed-point denominator of the reward rate: a rate of 5
// accrues 5 tokens per block per 1000 tokens staked.
const rewardScale = 1000

// BalanceSource is a read-only capability supplied at call time for checking
// an account's spendable balance. Passing it per call, rather than storing a
// reference to the balances ledger, keeps ownership of the ledger with its
// own pallet.
type BalanceSource[AccountID constraints.Ordered, Balance numeric.Unsigned] func(AccountID) Balance

// StakeInfo is the per-account stake record. It exists exactly while the
// account has an active stake.
type StakeInfo[AccountID constraints.Ordered, BlockNumber, Balance numeric.Unsigned] struct {
	StakedAmount    Balance
	Validator       AccountID
	StakeBlock      BlockNumber
	LastRewardBlock BlockNumber
	TotalRewards    Balance
}

// ValidatorInfo is the per-validator registry entry.
type ValidatorInfo[Balance numeric.Unsigned] struct {
	TotalStake     Balance
	CommissionRate uint8
	Active         bool
	NominatorCount uint32
}

// Params bundles the tunable staking policy.
type Params[BlockNumber, Balance numeric.Unsigned] struct {
	MinimumStake    Balance
	RewardRate      Balance
	UnstakingPeriod BlockNumber
	MaxValidators   uint32
}

// DefaultParams returns the stock policy used when no configuration is given.
func DefaultParams[BlockNumber, Balance numeric.Unsigned]() Params[BlockNumber, Balance] {
	return Params[BlockNumber, Balance]{
		MinimumStake:    100,
		RewardRate:      5,
		UnstakingPeriod: 10,
		MaxValidators:   10,
	}
}

// Stats is an aggregate snapshot of staking state, recomputed on demand.
type Stats[Balance numeric.Unsigned] struct {
	TotalStaked      Balance
	TotalValidators  uint32
	ActiveValidators uint32
	TotalStakers     uint32
	AverageStake     Balance
}

// Pallet owns the validator registry and all stake records.
type Pallet[AccountID constraints.Ordered, BlockNumber, Balance numeric.Unsigned] struct {
	stakes     map[AccountID]StakeInfo[AccountID, BlockNumber, Balance]
	validators map[AccountID]ValidatorInfo[Balance]

	params Params[BlockNumber, Balance]

	totalStaked  Balance
	currentBlock BlockNumber
	events       []Event
}

// New returns an empty staking pallet with the default policy.
func New[AccountID constraints.Ordered, BlockNumber, Balance numeric.Unsigned]() *Pallet[AccountID, BlockNumber, Balance] {
	return NewWithParams[AccountID](DefaultParams[BlockNumber, Balance]())
}

// NewWithParams returns an empty staking pallet with the supplied policy.
func NewWithParams[AccountID constraints.Ordered, BlockNumber, Balance numeric.Unsigned](params Params[BlockNumber, Balance]) *Pallet[AccountID, BlockNumber, Balance] {
	return &Pallet[AccountID, BlockNumber, Balance]{
		stakes:     make(map[AccountID]StakeInfo[AccountID, BlockNumber, Balance]),
		validators: make(map[AccountID]ValidatorInfo[Balance]),
		params:     params,
	}
}

// OnBlock is invoked once per finalized block by the surrounding runtime. It
// records the new height and sweeps reward accrual across every staker.
func (p *Pallet[AccountID, BlockNumber, Balance]) OnBlock(blockNumber BlockNumber) {
	p.currentBlock = blockNumber
	p.distributeRewards()
}

// AddValidator registers a validator with the given commission percentage.
func (p *Pallet[AccountID, BlockNumber, Balance]) AddValidator(validator AccountID, commissionRate uint8) error {
	if _, exists := p.validators[validator]; exists {
		return ErrAlreadyValidator
	}
	if uint32(len(p.validators)) >= p.params.MaxValidators {
		return ErrTooManyValidators
	}
	if commissionRate > 100 {
		return ErrInvalidValidator
	}
	p.validators[validator] = ValidatorInfo[Balance]{
		CommissionRate: commissionRate,
		Active:         true,
	}
	p.emit(ValidatorAdded[AccountID]{Validator: validator})
	return nil
}

// RemoveValidator deletes a validator from the registry. Stakes referencing
// the removed validator are left frozen in place: they stop accruing rewards
// and release normally through Unstake once the lock-up elapses.
func (p *Pallet[AccountID, BlockNumber, Balance]) RemoveValidator(validator AccountID) error {
	if _, exists := p.validators[validator]; !exists {
		return ErrNotValidator
	}
	delete(p.validators, validator)
	p.emit(ValidatorRemoved[AccountID]{Validator: validator})
	return nil
}

// Stake bonds amount to the given validator on behalf of who. The balance
// oracle only gates admission; the caller remains responsible for locking the
// funds in its own ledger.
func (p *Pallet[AccountID, BlockNumber, Balance]) Stake(who AccountID, amount Balance, validator AccountID, balanceOf BalanceSource[AccountID, Balance]) error {
	if _, exists := p.stakes[who]; exists {
		return ErrAlreadyStaked
	}
	if amount < p.params.MinimumStake {
		return ErrMinimumStakeNotMet
	}
	info, exists := p.validators[validator]
	if !exists || !info.Active {
		return ErrInvalidValidator
	}
	if balanceOf(who) < amount {
		return ErrInsufficientBalance
	}

	newTotal, ok := numeric.CheckedAdd(info.TotalStake, amount)
	if !ok {
		return ErrRewardCalculation
	}
	newGlobal, ok := numeric.CheckedAdd(p.totalStaked, amount)
	if !ok {
		return ErrRewardCalculation
	}

	info.TotalStake = newTotal
	info.NominatorCount++
	p.validators[validator] = info

	p.stakes[who] = StakeInfo[AccountID, BlockNumber, Balance]{
		StakedAmount:    amount,
		Validator:       validator,
		StakeBlock:      p.currentBlock,
		LastRewardBlock: p.currentBlock,
	}
	p.totalStaked = newGlobal

	p.emit(Staked[AccountID, Balance]{Who: who, Amount: amount, Validator: validator})
	return nil
}

// Unstake releases who's stake after the lock-up period and returns the freed
// amount. Crediting it back to the spendable balance is the caller's job.
func (p *Pallet[AccountID, BlockNumber, Balance]) Unstake(who AccountID) (Balance, error) {
	info, exists := p.stakes[who]
	if !exists {
		return 0, ErrNotStaked
	}
	releaseAt := numeric.SaturatingAdd(info.StakeBlock, p.params.UnstakingPeriod)
	if p.currentBlock < releaseAt {
		return 0, ErrUnstakingPeriodNotMet
	}

	p.reduceValidatorStake(info.Validator, info.StakedAmount, true)
	delete(p.stakes, who)
	if remaining, ok := numeric.CheckedSub(p.totalStaked, info.StakedAmount); ok {
		p.totalStaked = remaining
	} else {
		p.totalStaked = 0
	}

	p.emit(Unstaked[AccountID, Balance]{Who: who, Amount: info.StakedAmount})
	return info.StakedAmount, nil
}

// CalculateRewards returns the reward who has accrued since the last claim,
// net of the validator's commission. The base reward is
// staked * rate * blocksSinceLastClaim / 1000.
func (p *Pallet[AccountID, BlockNumber, Balance]) CalculateRewards(who AccountID) (Balance, error) {
	info, exists := p.stakes[who]
	if !exists {
		return 0, ErrNotStaked
	}
	validator, exists := p.validators[info.Validator]
	if !exists {
		// The validator vanished after staking began; the stake is frozen.
		return 0, ErrInvalidValidator
	}

	blocksSince := uint64(p.currentBlock) - uint64(info.LastRewardBlock)
	base, ok := numeric.CheckedMul(uint64(info.StakedAmount), uint64(p.params.RewardRate))
	if !ok {
		return 0, ErrRewardCalculation
	}
	base, ok = numeric.CheckedMul(base, blocksSince)
	if !ok {
		return 0, ErrRewardCalculation
	}
	base /= rewardScale

	commission := base * uint64(validator.CommissionRate) / 100
	net := base - commission
	if net > uint64(numeric.MaxValue[Balance]()) {
		return 0, ErrRewardCalculation
	}
	return Balance(net), nil
}

// ClaimRewards pays out the accrued reward for who, advances the reward
// checkpoint to the current block, and records the cumulative total.
func (p *Pallet[AccountID, BlockNumber, Balance]) ClaimRewards(who AccountID) (Balance, error) {
	reward, err := p.CalculateRewards(who)
	if err != nil {
		return 0, err
	}

	info := p.stakes[who]
	info.LastRewardBlock = p.currentBlock
	total, ok := numeric.CheckedAdd(info.TotalRewards, reward)
	if !ok {
		return 0, ErrRewardCalculation
	}
	info.TotalRewards = total
	p.stakes[who] = info

	p.emit(RewardsPaid[AccountID, Balance]{Who: who, Amount: reward})
	return reward, nil
}

// Slash reduces who's stake by up to amount and returns the slashed value.
// A stake slashed to zero is removed entirely.
func (p *Pallet[AccountID, BlockNumber, Balance]) Slash(who AccountID, amount Balance) (Balance, error) {
	info, exists := p.stakes[who]
	if !exists {
		return 0, ErrNotStaked
	}

	slashed := amount
	if slashed > info.StakedAmount {
		slashed = info.StakedAmount
	}

	info.StakedAmount -= slashed
	p.reduceValidatorStake(info.Validator, slashed, info.StakedAmount == 0)
	if remaining, ok := numeric.CheckedSub(p.totalStaked, slashed); ok {
		p.totalStaked = remaining
	} else {
		p.totalStaked = 0
	}

	if info.StakedAmount == 0 {
		delete(p.stakes, who)
	} else {
		p.stakes[who] = info
	}

	p.emit(SlashApplied[AccountID, Balance]{Who: who, Amount: slashed})
	return slashed, nil
}

// distributeRewards claims rewards for every staker in deterministic account
// order. A staker whose claim fails (for example, its validator vanished) is
// skipped; the sweep never halts.
func (p *Pallet[AccountID, BlockNumber, Balance]) distributeRewards() {
	stakers := make([]AccountID, 0, len(p.stakes))
	for who := range p.stakes {
		stakers = append(stakers, who)
	}
	slices.Sort(stakers)

	for _, who := range stakers {
		_, _ = p.ClaimRewards(who)
	}
}

// reduceValidatorStake lowers a validator's bookkeeping after an unstake or
// slash. A missing validator entry (removed after staking began) is a no-op.
func (p *Pallet[AccountID, BlockNumber, Balance]) reduceValidatorStake(validator AccountID, amount Balance, dropNominator bool) {
	info, exists := p.validators[validator]
	if !exists {
		return
	}
	if remaining, ok := numeric.CheckedSub(info.TotalStake, amount); ok {
		info.TotalStake = remaining
	} else {
		info.TotalStake = 0
	}
	if dropNominator && info.NominatorCount > 0 {
		info.NominatorCount--
	}
	p.validators[validator] = info
}

// StakeOf returns the stake record for an account, if present.
func (p *Pallet[AccountID, BlockNumber, Balance]) StakeOf(who AccountID) (StakeInfo[AccountID, BlockNumber, Balance], bool) {
	info, ok := p.stakes[who]
	return info, ok
}

// Validator returns the registry entry for a validator, if present.
func (p *Pallet[AccountID, BlockNumber, Balance]) Validator(validator AccountID) (ValidatorInfo[Balance], bool) {
	info, ok := p.validators[validator]
	return info, ok
}

// ActiveValidators returns the identities of all active validators in
// deterministic order.
func (p *Pallet[AccountID, BlockNumber, Balance]) ActiveValidators() []AccountID {
	active := make([]AccountID, 0, len(p.validators))
	for validator, info := range p.validators {
		if info.Active {
			active = append(active, validator)
		}
	}
	slices.Sort(active)
	return active
}

// TotalStaked returns the global amount currently bonded.
func (p *Pallet[AccountID, BlockNumber, Balance]) TotalStaked() Balance {
	return p.totalStaked
}

// IsStaking reports whether the account has an active stake.
func (p *Pallet[AccountID, BlockNumber, Balance]) IsStaking(who AccountID) bool {
	_, ok := p.stakes[who]
	return ok
}

// IsValidator reports whether the account is a registered validator.
func (p *Pallet[AccountID, BlockNumber, Balance]) IsValidator(who AccountID) bool {
	_, ok := p.validators[who]
	return ok
}

// Events returns the pending event queue without draining it.
func (p *Pallet[AccountID, BlockNumber, Balance]) Events() []Event {
	return p.events
}

// DrainEvents returns the pending events and clears the queue. The runtime
// calls this once per block.
func (p *Pallet[AccountID, BlockNumber, Balance]) DrainEvents() []Event {
	drained := p.events
	p.events = nil
	return drained
}

// Stats recomputes the aggregate staking view from current state.
func (p *Pallet[AccountID, BlockNumber, Balance]) Stats() Stats[Balance] {
	stats := Stats[Balance]{
		TotalStaked:     p.totalStaked,
		TotalValidators: uint32(len(p.validators)),
		TotalStakers:    uint32(len(p.stakes)),
	}
	for _, info := range p.validators {
		if info.Active {
			stats.ActiveValidators++
		}
	}
	if stats.TotalStakers > 0 {
		stats.AverageStake = p.totalStaked / Balance(stats.TotalStakers)
	}
	return stats
}

func (p *Pallet[AccountID, BlockNumber, Balance]) emit(event Event) {
	p.events = append(p.events, event)
}
