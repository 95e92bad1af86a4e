package contract

import (
	"github.com/pkg/errors"

	"forestlab/sdk"
)

// savePlatform writes the registry singleton.
func savePlatform(s sdk.State, p *Platform) {
	s.Set(platformKey(), string(EncodePlatform(p)))
}

// loadPlatform reads the registry singleton. A nil record with nil error means
// the platform was never initialized.
func loadPlatform(s sdk.State) (*Platform, error) {
	ptr := s.Get(platformKey())
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	p, err := DecodePlatform([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrap(err, "decode platform")
	}
	return p, nil
}

// requirePlatform loads the registry and rejects the call when it is absent.
func requirePlatform(s sdk.State) (*Platform, error) {
	p, err := loadPlatform(s)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlatformNotInitialized
	}
	return p, nil
}

// requireActivePlatform additionally rejects when the platform is paused.
func requireActivePlatform(s sdk.State) (*Platform, error) {
	p, err := requirePlatform(s)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, ErrPlatformInactive
	}
	return p, nil
}
