package contract

import (
	"github.com/pkg/errors"

	"forestlab/sdk"
)

// saveEpochRewards writes the live reward record for a project.
func saveEpochRewards(s sdk.State, e *EpochRewards) {
	s.Set(epochRewardsKey(e.ProjectID), string(EncodeEpochRewards(e)))
}

// loadEpochRewards reads the live reward record. A project that never accrued
// rewards has no record; callers that settle anyway operate on a zero-valued
// one.
func loadEpochRewards(s sdk.State, projectID uint64) (*EpochRewards, error) {
	ptr := s.Get(epochRewardsKey(projectID))
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	e, err := DecodeEpochRewards([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrapf(err, "decode epoch rewards %d", projectID)
	}
	return e, nil
}
