package contract

// -----------------------------------------------------------------------------
// Fee & Percentage Bounds
// -----------------------------------------------------------------------------

const (
	// BpsDenominator is the basis-point scale: 10000 bps = 100%.
	BpsDenominator = 10000
	// MaxPlatformFeeBps caps the platform fee at 2.5%.
	MaxPlatformFeeBps = 250
	// MaxManagerFeeBps caps the project manager fee at 100%.
	MaxManagerFeeBps = 10000
	// MaxRestakeBps caps the restake percentage at 100%.
	MaxRestakeBps = 10000
	// DefaultManagerFeeBps is the manager fee a fresh project starts with (2.5%).
	DefaultManagerFeeBps = 250
)

// -----------------------------------------------------------------------------
// Lockup Tiers
// -----------------------------------------------------------------------------

const (
	// MinLockupDuration is one day in seconds, the shortest accepted lock.
	MinLockupDuration = 86400

	// Bonus tiers by lock duration, longest threshold checked first.
	BonusTierYearDuration    = 365 * 86400
	BonusTierHalfDuration    = 180 * 86400
	BonusTierQuarterDuration = 90 * 86400

	BonusTierYearBps    = 1000
	BonusTierHalfBps    = 500
	BonusTierQuarterBps = 250
)

// -----------------------------------------------------------------------------
// Reward Estimation
// -----------------------------------------------------------------------------

// EpochsPerYear annualizes per-epoch rewards for the APY estimator assuming a
// ~2-day epoch cadence. Heuristic, not a precise figure.
const EpochsPerYear = 365 * 2

// -----------------------------------------------------------------------------
// Set Capacities
// -----------------------------------------------------------------------------

const (
	// MaxSigners bounds the multisig signer set.
	MaxSigners = 10
	// MaxCrankers bounds the automation whitelist.
	MaxCrankers = 10
)

// -----------------------------------------------------------------------------
// Metadata Bounds
// -----------------------------------------------------------------------------

const (
	MaxNameLength        = 32
	MaxSymbolLength      = 12
	MaxDescriptionLength = 250
	MaxURLLength         = 100
	MaxImageURILength    = 100
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// ProjectsCount holds an integer counter for projects (used for generating IDs).
	ProjectsCount = "count:proj"
)
