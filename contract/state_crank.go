package contract

import (
	"github.com/pkg/errors"

	"forestlab/sdk"
)

// saveCrankInfo writes the automation registry singleton.
func saveCrankInfo(s sdk.State, c *CrankInfo) {
	s.Set(crankInfoKey(), string(EncodeCrankInfo(c)))
}

// loadCrankInfo reads the automation registry, yielding a fresh empty record
// when none was ever written so crank management bootstraps itself.
func loadCrankInfo(s sdk.State) (*CrankInfo, error) {
	ptr := s.Get(crankInfoKey())
	if ptr == nil || *ptr == "" {
		return &CrankInfo{}, nil
	}
	c, err := DecodeCrankInfo([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrap(err, "decode crank info")
	}
	return c, nil
}
