package contract

import "forestlab/sdk"

// InitializePlatform creates the registry singleton. The caller becomes the
// authority. One-time: a second call is rejected once the record exists.
func (e *Engine) InitializePlatform(caller sdk.Address, platformFee uint16, minStakeAmount uint64, adminWallet sdk.Address) error {
	return e.run("initialize_platform", func(s *stagedState) error {
		if platformFee > MaxPlatformFeeBps {
			return ErrInvalidFeePercentage
		}
		existing, err := loadPlatform(s)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyInitialized
		}

		p := &Platform{
			Authority:      caller,
			AdminWallet:    adminWallet,
			PlatformFee:    platformFee,
			MinStakeAmount: minStakeAmount,
			IsActive:       true,
			TotalProjects:  0,
			TotalStaked:    0,
			CreatedAt:      e.nowUnix(),
		}
		savePlatform(s, p)
		e.emitPlatformCreated(p)
		return nil
	})
}

// UpdatePlatformSettings applies any subset of the registry's tunable fields.
// Nil pointers leave the stored value untouched. Authority only.
func (e *Engine) UpdatePlatformSettings(caller sdk.Address, platformFee *uint16, minStakeAmount *uint64, adminWallet *sdk.Address, isActive *bool) error {
	return e.run("update_platform_settings", func(s *stagedState) error {
		p, err := requirePlatform(s)
		if err != nil {
			return err
		}
		if p.Authority != caller {
			return ErrUnauthorized
		}

		if platformFee != nil {
			if *platformFee > MaxPlatformFeeBps {
				return ErrInvalidFeePercentage
			}
			p.PlatformFee = *platformFee
		}
		if minStakeAmount != nil {
			p.MinStakeAmount = *minStakeAmount
		}
		if adminWallet != nil {
			p.AdminWallet = *adminWallet
		}
		if isActive != nil {
			p.IsActive = *isActive
		}

		savePlatform(s, p)
		e.emitPlatformSettingsUpdated(p, e.nowUnix())
		return nil
	})
}
