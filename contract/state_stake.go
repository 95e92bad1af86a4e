package contract

import (
	"github.com/pkg/errors"

	"forestlab/sdk"
)

// saveStakePosition writes a participant's position in a project.
func saveStakePosition(s sdk.State, p *StakePosition) {
	s.Set(stakePositionKey(p.ProjectID, p.Participant), string(EncodeStakePosition(p)))
}

// loadStakePosition reads a position. Nil with nil error means the participant
// never staked in this project; an emptied position still loads.
func loadStakePosition(s sdk.State, projectID uint64, addr sdk.Address) (*StakePosition, error) {
	ptr := s.Get(stakePositionKey(projectID, addr))
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	p, err := DecodeStakePosition([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrapf(err, "decode stake position %d/%s", projectID, addr)
	}
	return p, nil
}
