package contract

import "forestlab/sdk"

// ExecuteCrank records that a maintenance trigger fired for an epoch. The
// engine only books the execution; the maintenance routine itself runs
// outside, keyed off the emitted event. Platform admins and whitelisted
// crankers may call.
func (e *Engine) ExecuteCrank(caller sdk.Address, projectID uint64, epoch uint64) error {
	return e.run("execute_crank", func(s *stagedState) error {
		platform, err := requirePlatform(s)
		if err != nil {
			return err
		}
		if _, err := requireProject(s, projectID); err != nil {
			return err
		}
		info, err := loadCrankInfo(s)
		if err != nil {
			return err
		}
		isAdmin := platform.Authority == caller || platform.AdminWallet == caller
		if !isAdmin && !info.contains(caller) {
			return ErrUnauthorized
		}

		now := e.nowUnix()
		info.LastExecutedEpoch = epoch
		info.LastExecutionTime = now
		info.ExecutionCount = satAdd(info.ExecutionCount, 1)
		saveCrankInfo(s, info)

		e.emitCrankExecuted(projectID, epoch, caller, now)
		return nil
	})
}

// ManageCrankers adds and removes whitelist entries. Adds are deduplicated
// and the set is hard-capped; removes of absent entries are no-ops. Platform
// authority or admin only.
func (e *Engine) ManageCrankers(caller sdk.Address, add, remove []sdk.Address) error {
	return e.run("manage_crankers", func(s *stagedState) error {
		platform, err := requirePlatform(s)
		if err != nil {
			return err
		}
		if platform.Authority != caller && platform.AdminWallet != caller {
			return ErrUnauthorized
		}
		info, err := loadCrankInfo(s)
		if err != nil {
			return err
		}

		for _, cranker := range add {
			if info.contains(cranker) {
				continue
			}
			if len(info.AuthorizedCrankers) >= MaxCrankers {
				return ErrTooManyCrankers
			}
			info.AuthorizedCrankers = append(info.AuthorizedCrankers, cranker)
		}
		for _, cranker := range remove {
			kept := info.AuthorizedCrankers[:0]
			for _, a := range info.AuthorizedCrankers {
				if a != cranker {
					kept = append(kept, a)
				}
			}
			info.AuthorizedCrankers = kept
		}

		saveCrankInfo(s, info)
		e.emitCrankersUpdated(info, e.nowUnix())
		return nil
	})
}
