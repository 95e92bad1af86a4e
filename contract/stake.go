package contract

import "forestlab/sdk"

// RecordStake books a completed deposit: amount of base currency staked,
// unitAmount of receipt units issued. The actual value movement happened
// before this call; the engine only keeps the ledger consistent.
func (e *Engine) RecordStake(caller sdk.Address, projectID uint64, amount, unitAmount uint64) error {
	return e.run("record_stake", func(s *stagedState) error {
		platform, err := requireActivePlatform(s)
		if err != nil {
			return err
		}
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}
		if project.Status != StatusActive {
			return ErrProjectInactive
		}
		if amount < platform.MinStakeAmount {
			return ErrBelowMinimumStake
		}

		now := e.nowUnix()
		position, err := loadStakePosition(s, projectID, caller)
		if err != nil {
			return err
		}
		newSupporter := position == nil
		if newSupporter {
			position = &StakePosition{
				Participant:    caller,
				ProjectID:      projectID,
				InitialStake:   amount,
				UnitBalance:    unitAmount,
				FirstStakeTime: now,
			}
			project.SupportersCount = satAdd(project.SupportersCount, 1)
		} else {
			position.InitialStake = satAdd(position.InitialStake, amount)
			position.UnitBalance = satAdd(position.UnitBalance, unitAmount)
		}
		position.LastStakeTime = now
		saveStakePosition(s, position)

		project.FundsRaised = satAdd(project.FundsRaised, amount)
		saveProject(s, projectID, project)

		platform.TotalStaked = satAdd(platform.TotalStaked, amount)
		savePlatform(s, platform)

		e.emitProjectStaked(projectID, caller, amount, unitAmount, newSupporter, now)
		return nil
	})
}

// RecordUnstake books a completed withdrawal of unitAmount receipt units. The
// principal removed is the position's stake scaled by the burned share of its
// unit balance, floor division through a 128-bit intermediate. Burning the
// whole balance releases the whole remaining principal.
func (e *Engine) RecordUnstake(caller sdk.Address, projectID uint64, unitAmount uint64) error {
	return e.run("record_unstake", func(s *stagedState) error {
		platform, err := requirePlatform(s)
		if err != nil {
			return err
		}
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}
		position, err := loadStakePosition(s, projectID, caller)
		if err != nil {
			return err
		}
		if position == nil {
			return ErrStakeNotFound
		}
		if position.UnitBalance < unitAmount {
			return ErrInsufficientUnitBalance
		}

		principalRemoved := proportionalShare(position.InitialStake, unitAmount, position.UnitBalance)

		position.InitialStake = satSub(position.InitialStake, principalRemoved)
		position.UnitBalance = satSub(position.UnitBalance, unitAmount)
		saveStakePosition(s, position)

		project.FundsRaised = satSub(project.FundsRaised, principalRemoved)
		// The supporter count drops only on the transition to empty, so an
		// emptied position unstaking zero units again cannot drain it.
		if unitAmount > 0 && position.UnitBalance == 0 {
			project.SupportersCount = satSub(project.SupportersCount, 1)
		}
		saveProject(s, projectID, project)

		platform.TotalStaked = satSub(platform.TotalStaked, principalRemoved)
		savePlatform(s, platform)

		e.emitProjectUnstaked(projectID, caller, principalRemoved, unitAmount, e.nowUnix())
		return nil
	})
}

// ClaimRewards books a reward payout to the caller's claim history. The
// engine does not compute entitlements; the amount is trusted from the caller
// that executed the payout.
func (e *Engine) ClaimRewards(caller sdk.Address, projectID uint64, rewardAmount uint64) error {
	return e.run("claim_rewards", func(s *stagedState) error {
		if _, err := requireProject(s, projectID); err != nil {
			return err
		}
		position, err := loadStakePosition(s, projectID, caller)
		if err != nil {
			return err
		}
		if position == nil {
			return ErrStakeNotFound
		}
		if rewardAmount == 0 {
			return ErrInvalidAmount
		}

		now := e.nowUnix()
		position.RewardsClaimed = satAdd(position.RewardsClaimed, rewardAmount)
		position.LastClaimTime = now
		saveStakePosition(s, position)

		e.emitRewardsClaimed(projectID, caller, rewardAmount, now)
		return nil
	})
}
