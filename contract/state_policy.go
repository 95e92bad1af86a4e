package contract

import (
	"github.com/pkg/errors"

	"forestlab/sdk"
)

// saveRestakeConfig writes a project's restake policy.
func saveRestakeConfig(s sdk.State, c *RestakeConfig) {
	s.Set(restakeConfigKey(c.ProjectID), string(EncodeRestakeConfig(c)))
}

// loadRestakeConfig reads a restake policy. Nil with nil error means none set.
func loadRestakeConfig(s sdk.State, projectID uint64) (*RestakeConfig, error) {
	ptr := s.Get(restakeConfigKey(projectID))
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	c, err := DecodeRestakeConfig([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrapf(err, "decode restake config %d", projectID)
	}
	return c, nil
}

// saveMultisigConfig writes a project's signer policy.
func saveMultisigConfig(s sdk.State, c *MultisigConfig) {
	s.Set(multisigConfigKey(c.ProjectID), string(EncodeMultisigConfig(c)))
}

// loadMultisigConfig reads a signer policy. Nil with nil error means none set.
func loadMultisigConfig(s sdk.State, projectID uint64) (*MultisigConfig, error) {
	ptr := s.Get(multisigConfigKey(projectID))
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	c, err := DecodeMultisigConfig([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrapf(err, "decode multisig config %d", projectID)
	}
	return c, nil
}
