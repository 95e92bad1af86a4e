package contract

import (
	"github.com/pkg/errors"

	"forestlab/sdk"
)

// saveLockup writes the time lock for one participant in one project.
func saveLockup(s sdk.State, l *Lockup) {
	s.Set(lockupKey(l.ProjectID, l.Participant), string(EncodeLockup(l)))
}

// loadLockup reads a lockup record. Nil with nil error means none exists;
// released locks persist and load normally until replaced.
func loadLockup(s sdk.State, projectID uint64, addr sdk.Address) (*Lockup, error) {
	ptr := s.Get(lockupKey(projectID, addr))
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	l, err := DecodeLockup([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrapf(err, "decode lockup %d/%s", projectID, addr)
	}
	return l, nil
}
