package contract

import "forestlab/sdk"

// Read-only accessors for inspection. They go straight to the backing store;
// nothing here mutates.

// GetPlatform returns the registry singleton, nil if never initialized.
func (e *Engine) GetPlatform() (*Platform, error) {
	return loadPlatform(e.state)
}

// GetProject returns a project record, nil if absent.
func (e *Engine) GetProject(projectID uint64) (*Project, error) {
	return loadProject(e.state, projectID)
}

// GetStakePosition returns a participant's position, nil if they never staked.
func (e *Engine) GetStakePosition(projectID uint64, participant sdk.Address) (*StakePosition, error) {
	return loadStakePosition(e.state, projectID, participant)
}

// GetEpochRewards returns the live reward record, nil if none accrued yet.
func (e *Engine) GetEpochRewards(projectID uint64) (*EpochRewards, error) {
	return loadEpochRewards(e.state, projectID)
}

// GetLockup returns a participant's lockup, released or not, nil if none.
func (e *Engine) GetLockup(projectID uint64, participant sdk.Address) (*Lockup, error) {
	return loadLockup(e.state, projectID, participant)
}

// GetCrankInfo returns the automation registry, empty if never written.
func (e *Engine) GetCrankInfo() (*CrankInfo, error) {
	return loadCrankInfo(e.state)
}

// GetRestakeConfig returns a project's restake policy, nil if none set.
func (e *Engine) GetRestakeConfig(projectID uint64) (*RestakeConfig, error) {
	return loadRestakeConfig(e.state, projectID)
}

// GetMultisigConfig returns a project's signer policy, nil if none set.
func (e *Engine) GetMultisigConfig(projectID uint64) (*MultisigConfig, error) {
	return loadMultisigConfig(e.state, projectID)
}

// ListProjectIDs returns every registered project id in registration order.
func (e *Engine) ListProjectIDs() ([]uint64, error) {
	return loadProjectIndex(e.state)
}
