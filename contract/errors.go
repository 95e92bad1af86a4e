package contract

import "github.com/pkg/errors"

// Every failure is a rejection: validation runs before any write, so a failed
// operation leaves all records untouched. The sentinels below are matched with
// errors.Is; storage accessors wrap them with key context.
var (
	// configuration bounds
	ErrInvalidFeePercentage = errors.New("invalid fee percentage")
	ErrInvalidPercentage    = errors.New("invalid percentage")
	ErrInvalidSignerCount   = errors.New("invalid signer count")
	ErrTooManySigners       = errors.New("too many signers")
	ErrInvalidThreshold     = errors.New("invalid threshold")
	ErrThresholdTooHigh     = errors.New("threshold exceeds signer count")
	ErrTooManyCrankers      = errors.New("too many crankers")
	ErrTextTooLong          = errors.New("text field too long")

	// authorization
	ErrUnauthorized = errors.New("unauthorized")

	// state preconditions
	ErrAlreadyInitialized       = errors.New("platform already initialized")
	ErrPlatformNotInitialized   = errors.New("platform not initialized")
	ErrPlatformInactive         = errors.New("platform inactive")
	ErrProjectInactive          = errors.New("project inactive")
	ErrAlreadyProcessedForEpoch = errors.New("rewards already recorded for epoch")
	ErrAlreadyProcessed         = errors.New("rewards already processed")
	ErrLockupExists             = errors.New("unreleased lockup exists")
	ErrAlreadyReleased          = errors.New("lockup already released")
	ErrLockupNotExpired         = errors.New("lockup not expired")
	ErrInvalidStatus            = errors.New("invalid project status")

	// referential
	ErrProjectNotFound = errors.New("project not found")
	ErrStakeNotFound   = errors.New("stake position not found")
	ErrLockupNotFound  = errors.New("lockup not found")

	// amounts
	ErrEmptyName               = errors.New("empty project name")
	ErrEmptySymbol             = errors.New("empty project symbol")
	ErrInvalidFundingGoal      = errors.New("invalid funding goal")
	ErrInvalidDuration         = errors.New("invalid duration")
	ErrBelowMinimumStake       = errors.New("below minimum stake amount")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInsufficientUnitBalance = errors.New("insufficient receipt unit balance")
	ErrLockupTooShort          = errors.New("lockup duration too short")
)
