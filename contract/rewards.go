package contract

import "forestlab/sdk"

// ProcessEpochRewards is the accrual phase: it records the gross rewards for
// an epoch, splits out the platform fee and resets the settlement flag.
// Re-accrual for the epoch already stored is rejected; any other epoch number
// is accepted, ordering is not enforced. Platform authority or admin only.
func (e *Engine) ProcessEpochRewards(caller sdk.Address, projectID uint64, epoch, totalRewards uint64) error {
	return e.run("process_epoch_rewards", func(s *stagedState) error {
		platform, err := requirePlatform(s)
		if err != nil {
			return err
		}
		if platform.Authority != caller && platform.AdminWallet != caller {
			return ErrUnauthorized
		}
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}

		rec, err := loadEpochRewards(s, projectID)
		if err != nil {
			return err
		}
		if rec == nil {
			rec = &EpochRewards{ProjectID: projectID}
		}
		if rec.Epoch > 0 && rec.Epoch == epoch {
			return ErrAlreadyProcessedForEpoch
		}

		platformFee := bpsShare(totalRewards, platform.PlatformFee)
		projectRewards := satSub(totalRewards, platformFee)

		// Settlement fields from the previous epoch stay in place until the
		// next settle overwrites them.
		rec.Epoch = epoch
		rec.TotalRewards = totalRewards
		rec.PlatformFee = platformFee
		rec.ProjectRewards = projectRewards
		rec.Processed = false
		rec.Timestamp = e.nowUnix()
		saveEpochRewards(s, rec)

		project.TotalRewards = satAdd(project.TotalRewards, projectRewards)
		if project.FundsRaised > 0 {
			// Moving estimate: annualize the epoch's project share assuming a
			// two day cadence, then blend 9:1 with the previous estimate.
			annualized := satMul(projectRewards, EpochsPerYear)
			apy := satMul(annualized, BpsDenominator) / project.FundsRaised
			project.ApyEstimate = uint16(satAdd(satMul(uint64(project.ApyEstimate), 9), apy) / 10)
		}
		saveProject(s, projectID, project)

		e.emitEpochRewardsProcessed(rec)
		return nil
	})
}

// SwapAndDistributeRewards is the settlement phase: it records the converted
// distribution for the live epoch record and flips the processed flag exactly
// once. rewardAmount is the receipt units converted; convertedAmount is the
// resulting secondary-asset total, split by the project's manager fee. The
// conversion itself happened outside the engine and is trusted. Platform
// authority or admin only.
func (e *Engine) SwapAndDistributeRewards(caller sdk.Address, projectID uint64, rewardAmount, convertedAmount uint64) error {
	return e.run("swap_and_distribute_rewards", func(s *stagedState) error {
		platform, err := requirePlatform(s)
		if err != nil {
			return err
		}
		if platform.Authority != caller && platform.AdminWallet != caller {
			return ErrUnauthorized
		}
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}

		rec, err := loadEpochRewards(s, projectID)
		if err != nil {
			return err
		}
		if rec == nil {
			// Settling ahead of any accrual operates on a zero-valued record.
			rec = &EpochRewards{ProjectID: projectID}
		}
		if rec.Processed {
			return ErrAlreadyProcessed
		}
		if convertedAmount == 0 {
			return ErrInvalidAmount
		}

		projectFee := bpsShare(convertedAmount, project.ManagerFee)
		rec.Processed = true
		rec.SwappedAmount = convertedAmount
		rec.ProjectFee = projectFee
		rec.ProjectAmount = satSub(convertedAmount, projectFee)
		saveEpochRewards(s, rec)

		e.emitRewardsDistributed(rec, rewardAmount, e.nowUnix())
		return nil
	})
}
