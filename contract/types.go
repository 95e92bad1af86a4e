package contract

import "forestlab/sdk"

// ProjectStatus captures a project's lifecycle. The enum is deliberately flat:
// UpdateProjectStatus permits any transition from any state.
type ProjectStatus uint8

const (
	StatusActive    ProjectStatus = 0
	StatusPaused    ProjectStatus = 1
	StatusCompleted ProjectStatus = 2
	StatusCancelled ProjectStatus = 3
)

// valid reports whether the value names a known status.
func (s ProjectStatus) valid() bool {
	return s <= StatusCancelled
}

// String prints the status as lower-case text for events and logs.
func (s ProjectStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Platform is the singleton registry record: global configuration plus
// aggregate counters. Created once, mutated by the authority only.
type Platform struct {
	Authority      sdk.Address
	AdminWallet    sdk.Address
	PlatformFee    uint16 // basis points, <= MaxPlatformFeeBps
	MinStakeAmount uint64
	IsActive       bool
	TotalProjects  uint64
	TotalStaked    uint64
	CreatedAt      int64
}

// Project is one registered project's ledger record.
type Project struct {
	Creator         sdk.Address
	Name            string
	Symbol          string
	Description     string
	Website         string
	ImageURI        string
	FundingGoal     uint64
	FundsRaised     uint64
	SupportersCount uint64
	ReceiptMint     sdk.Mint
	Status          ProjectStatus
	CreatedAt       int64
	EndTime         int64
	FundsClaimed    bool
	ManagerFee      uint16 // basis points, <= MaxManagerFeeBps
	PayoutWallet    sdk.Address
	ApyEstimate     uint16 // basis points, moving estimate
	TotalRewards    uint64 // cumulative project share of accrued rewards
}

// StakePosition tracks one participant's stake in one project. An emptied
// position persists with zero balances; existence is key presence in the
// store, never a zero-identity sentinel.
type StakePosition struct {
	Participant    sdk.Address
	ProjectID      uint64
	InitialStake   uint64 // principal, proportionally adjusted on unstake
	UnitBalance    uint64 // current receipt units
	FirstStakeTime int64
	LastStakeTime  int64
	RewardsClaimed uint64
	LastClaimTime  int64
}

// EpochRewards is the per-project reward record, overwritten each epoch by the
// accrual phase and settled exactly once by the distribution phase.
type EpochRewards struct {
	ProjectID      uint64
	Epoch          uint64
	TotalRewards   uint64
	PlatformFee    uint64
	ProjectRewards uint64
	Processed      bool
	SwappedAmount  uint64
	ProjectFee     uint64
	ProjectAmount  uint64
	Timestamp      int64
}

// Lockup is a per (participant, project) time lock on receipt units. Released
// lockups persist as history and may be replaced by a new lock.
type Lockup struct {
	Participant sdk.Address
	ProjectID   uint64
	ReceiptMint sdk.Mint
	Amount      uint64
	StartTime   int64
	EndTime     int64
	IsReleased  bool
	ReleaseTime int64
	BonusBps    uint16
}

// CrankInfo is the automation registry: the whitelist of principals allowed to
// trigger periodic maintenance plus execution bookkeeping.
type CrankInfo struct {
	LastExecutedEpoch  uint64
	LastExecutionTime  int64
	ExecutionCount     uint64
	AuthorizedCrankers []sdk.Address
}

// contains reports whether addr is whitelisted.
func (c *CrankInfo) contains(addr sdk.Address) bool {
	for _, a := range c.AuthorizedCrankers {
		if a == addr {
			return true
		}
	}
	return false
}

// RestakeConfig is a passive per-project policy record. Validated on write,
// consulted (not enforced) by external collaborators.
type RestakeConfig struct {
	ProjectID  uint64
	SourceMint sdk.Mint
	TargetMint sdk.Mint
	RestakeBps uint16
	IsActive   bool
}

// MultisigConfig is a passive per-project signer policy record.
type MultisigConfig struct {
	ProjectID uint64
	Signers   []sdk.Address
	Threshold uint8
	IsActive  bool
}
