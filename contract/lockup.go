package contract

import "forestlab/sdk"

// CreateLockup escrows receipt units for a duration in exchange for a
// maturity bonus tier. The units move into the vault through the token
// ledger; a failed move aborts before anything is written. A released lockup
// on the same key is history and gets replaced.
func (e *Engine) CreateLockup(caller sdk.Address, projectID uint64, amount uint64, duration int64) error {
	return e.run("create_lockup", func(s *stagedState) error {
		if duration < MinLockupDuration {
			return ErrLockupTooShort
		}
		if amount == 0 {
			return ErrInvalidAmount
		}
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}
		if project.Status != StatusActive {
			return ErrProjectInactive
		}
		existing, err := loadLockup(s, projectID, caller)
		if err != nil {
			return err
		}
		if existing != nil && !existing.IsReleased {
			return ErrLockupExists
		}

		if err := e.ledger.Draw(caller, project.ReceiptMint, amount); err != nil {
			return err
		}

		now := e.nowUnix()
		lock := &Lockup{
			Participant: caller,
			ProjectID:   projectID,
			ReceiptMint: project.ReceiptMint,
			Amount:      amount,
			StartTime:   now,
			EndTime:     now + duration,
			IsReleased:  false,
			ReleaseTime: 0,
			BonusBps:    lockupBonusBps(duration),
		}
		saveLockup(s, lock)
		e.emitLockupCreated(lock)
		return nil
	})
}

// ReleaseLockup returns matured units to the participant and marks the lock
// released. The bonus percentage stays recorded only; paying it out is the
// job of an external collaborator.
func (e *Engine) ReleaseLockup(caller sdk.Address, projectID uint64) error {
	return e.run("release_lockup", func(s *stagedState) error {
		lock, err := loadLockup(s, projectID, caller)
		if err != nil {
			return err
		}
		if lock == nil {
			return ErrLockupNotFound
		}
		if lock.IsReleased {
			return ErrAlreadyReleased
		}
		now := e.nowUnix()
		if now < lock.EndTime {
			return ErrLockupNotExpired
		}

		if err := e.ledger.Transfer(caller, lock.ReceiptMint, lock.Amount); err != nil {
			return err
		}

		lock.IsReleased = true
		lock.ReleaseTime = now
		saveLockup(s, lock)
		e.emitLockupReleased(lock)
		return nil
	})
}
