package contract

import "forestlab/sdk"

// SetupRestaking writes the project's restake policy: what share of rewards
// to roll into which target mint. Validated here, enforced by the external
// collaborator that consults it. Creator only.
func (e *Engine) SetupRestaking(caller sdk.Address, projectID uint64, targetMint sdk.Mint, restakeBps uint16) error {
	return e.run("setup_restaking", func(s *stagedState) error {
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}
		if project.Creator != caller {
			return ErrUnauthorized
		}
		if restakeBps > MaxRestakeBps {
			return ErrInvalidPercentage
		}

		cfg := &RestakeConfig{
			ProjectID:  projectID,
			SourceMint: project.ReceiptMint,
			TargetMint: targetMint,
			RestakeBps: restakeBps,
			IsActive:   true,
		}
		saveRestakeConfig(s, cfg)
		e.emitRestakingConfigured(cfg, e.nowUnix())
		return nil
	})
}

// SetupMultisig writes the project's signer policy. The signer set is bounded
// and the threshold must be satisfiable. Creator only.
func (e *Engine) SetupMultisig(caller sdk.Address, projectID uint64, signers []sdk.Address, threshold uint8) error {
	return e.run("setup_multisig", func(s *stagedState) error {
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}
		if project.Creator != caller {
			return ErrUnauthorized
		}
		if len(signers) == 0 {
			return ErrInvalidSignerCount
		}
		if len(signers) > MaxSigners {
			return ErrTooManySigners
		}
		if threshold == 0 {
			return ErrInvalidThreshold
		}
		if int(threshold) > len(signers) {
			return ErrThresholdTooHigh
		}

		cfg := &MultisigConfig{
			ProjectID: projectID,
			Signers:   append([]sdk.Address(nil), signers...),
			Threshold: threshold,
			IsActive:  true,
		}
		saveMultisigConfig(s, cfg)
		e.emitMultisigConfigured(cfg, e.nowUnix())
		return nil
	})
}
