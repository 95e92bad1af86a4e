package contract

import (
	"strconv"
	"strings"

	"forestlab/sdk"
)

// Event names, one per state-mutating operation.
const (
	EvPlatformCreated         = "platform_created"
	EvPlatformSettingsUpdated = "platform_settings_updated"
	EvProjectRegistered       = "project_registered"
	EvProjectSettingsUpdated  = "project_settings_updated"
	EvProjectStatusUpdated    = "project_status_updated"
	EvProjectStaked           = "project_staked"
	EvProjectUnstaked         = "project_unstaked"
	EvEpochRewardsProcessed   = "epoch_rewards_processed"
	EvRewardsDistributed      = "rewards_distributed"
	EvRewardsClaimed          = "rewards_claimed"
	EvLockupCreated           = "lockup_created"
	EvLockupReleased          = "lockup_released"
	EvCrankExecuted           = "crank_executed"
	EvCrankersUpdated         = "crankers_updated"
	EvRestakingConfigured     = "restaking_configured"
	EvMultisigConfigured      = "multisig_configured"
)

func u64Attr(v uint64) string { return strconv.FormatUint(v, 10) }
func u16Attr(v uint16) string { return strconv.FormatUint(uint64(v), 10) }
func i64Attr(v int64) string  { return strconv.FormatInt(v, 10) }
func boolAttr(v bool) string  { return strconv.FormatBool(v) }
func addrsAttr(list []sdk.Address) string {
	parts := make([]string, len(list))
	for i, a := range list {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

func (e *Engine) emitPlatformCreated(p *Platform) {
	e.sink.Emit(sdk.Event{Name: EvPlatformCreated, Attrs: map[string]string{
		"authority":        p.Authority.String(),
		"admin_wallet":     p.AdminWallet.String(),
		"platform_fee":     u16Attr(p.PlatformFee),
		"min_stake_amount": u64Attr(p.MinStakeAmount),
	}})
}

func (e *Engine) emitPlatformSettingsUpdated(p *Platform, now int64) {
	e.sink.Emit(sdk.Event{Name: EvPlatformSettingsUpdated, Attrs: map[string]string{
		"authority":        p.Authority.String(),
		"platform_fee":     u16Attr(p.PlatformFee),
		"min_stake_amount": u64Attr(p.MinStakeAmount),
		"admin_wallet":     p.AdminWallet.String(),
		"is_active":        boolAttr(p.IsActive),
		"timestamp":        i64Attr(now),
	}})
}

func (e *Engine) emitProjectRegistered(id uint64, p *Project) {
	e.sink.Emit(sdk.Event{Name: EvProjectRegistered, Attrs: map[string]string{
		"project":      u64Attr(id),
		"creator":      p.Creator.String(),
		"name":         p.Name,
		"symbol":       p.Symbol,
		"funding_goal": u64Attr(p.FundingGoal),
		"end_time":     i64Attr(p.EndTime),
		"receipt_mint": p.ReceiptMint.String(),
		"apy_estimate": u16Attr(p.ApyEstimate),
	}})
}

func (e *Engine) emitProjectSettingsUpdated(id uint64, p *Project, now int64) {
	e.sink.Emit(sdk.Event{Name: EvProjectSettingsUpdated, Attrs: map[string]string{
		"project":       u64Attr(id),
		"manager_fee":   u16Attr(p.ManagerFee),
		"payout_wallet": p.PayoutWallet.String(),
		"timestamp":     i64Attr(now),
	}})
}

func (e *Engine) emitProjectStatusUpdated(id uint64, prev, next ProjectStatus, by sdk.Address, now int64) {
	e.sink.Emit(sdk.Event{Name: EvProjectStatusUpdated, Attrs: map[string]string{
		"project":         u64Attr(id),
		"previous_status": prev.String(),
		"new_status":      next.String(),
		"updated_by":      by.String(),
		"timestamp":       i64Attr(now),
	}})
}

func (e *Engine) emitProjectStaked(id uint64, user sdk.Address, amount, units uint64, newSupporter bool, now int64) {
	e.sink.Emit(sdk.Event{Name: EvProjectStaked, Attrs: map[string]string{
		"project":          u64Attr(id),
		"user":             user.String(),
		"amount":           u64Attr(amount),
		"unit_amount":      u64Attr(units),
		"is_new_supporter": boolAttr(newSupporter),
		"timestamp":        i64Attr(now),
	}})
}

func (e *Engine) emitProjectUnstaked(id uint64, user sdk.Address, principal, units uint64, now int64) {
	e.sink.Emit(sdk.Event{Name: EvProjectUnstaked, Attrs: map[string]string{
		"project":     u64Attr(id),
		"user":        user.String(),
		"amount":      u64Attr(principal),
		"unit_amount": u64Attr(units),
		"timestamp":   i64Attr(now),
	}})
}

func (e *Engine) emitEpochRewardsProcessed(rec *EpochRewards) {
	e.sink.Emit(sdk.Event{Name: EvEpochRewardsProcessed, Attrs: map[string]string{
		"project":         u64Attr(rec.ProjectID),
		"epoch":           u64Attr(rec.Epoch),
		"total_rewards":   u64Attr(rec.TotalRewards),
		"platform_fee":    u64Attr(rec.PlatformFee),
		"project_rewards": u64Attr(rec.ProjectRewards),
		"timestamp":       i64Attr(rec.Timestamp),
	}})
}

func (e *Engine) emitRewardsDistributed(rec *EpochRewards, unitAmount uint64, now int64) {
	e.sink.Emit(sdk.Event{Name: EvRewardsDistributed, Attrs: map[string]string{
		"project":          u64Attr(rec.ProjectID),
		"epoch":            u64Attr(rec.Epoch),
		"unit_amount":      u64Attr(unitAmount),
		"converted_amount": u64Attr(rec.SwappedAmount),
		"project_fee":      u64Attr(rec.ProjectFee),
		"project_amount":   u64Attr(rec.ProjectAmount),
		"timestamp":        i64Attr(now),
	}})
}

func (e *Engine) emitRewardsClaimed(id uint64, user sdk.Address, amount uint64, now int64) {
	e.sink.Emit(sdk.Event{Name: EvRewardsClaimed, Attrs: map[string]string{
		"project":   u64Attr(id),
		"user":      user.String(),
		"amount":    u64Attr(amount),
		"timestamp": i64Attr(now),
	}})
}

func (e *Engine) emitLockupCreated(l *Lockup) {
	e.sink.Emit(sdk.Event{Name: EvLockupCreated, Attrs: map[string]string{
		"project":    u64Attr(l.ProjectID),
		"user":       l.Participant.String(),
		"amount":     u64Attr(l.Amount),
		"start_time": i64Attr(l.StartTime),
		"end_time":   i64Attr(l.EndTime),
		"bonus_bps":  u16Attr(l.BonusBps),
	}})
}

func (e *Engine) emitLockupReleased(l *Lockup) {
	e.sink.Emit(sdk.Event{Name: EvLockupReleased, Attrs: map[string]string{
		"project":      u64Attr(l.ProjectID),
		"user":         l.Participant.String(),
		"amount":       u64Attr(l.Amount),
		"release_time": i64Attr(l.ReleaseTime),
	}})
}

func (e *Engine) emitCrankExecuted(id uint64, epoch uint64, executor sdk.Address, now int64) {
	e.sink.Emit(sdk.Event{Name: EvCrankExecuted, Attrs: map[string]string{
		"project":   u64Attr(id),
		"epoch":     u64Attr(epoch),
		"executor":  executor.String(),
		"timestamp": i64Attr(now),
	}})
}

func (e *Engine) emitCrankersUpdated(c *CrankInfo, now int64) {
	e.sink.Emit(sdk.Event{Name: EvCrankersUpdated, Attrs: map[string]string{
		"authorized_crankers": addrsAttr(c.AuthorizedCrankers),
		"timestamp":           i64Attr(now),
	}})
}

func (e *Engine) emitRestakingConfigured(c *RestakeConfig, now int64) {
	e.sink.Emit(sdk.Event{Name: EvRestakingConfigured, Attrs: map[string]string{
		"project":     u64Attr(c.ProjectID),
		"source_mint": c.SourceMint.String(),
		"target_mint": c.TargetMint.String(),
		"restake_bps": u16Attr(c.RestakeBps),
		"timestamp":   i64Attr(now),
	}})
}

func (e *Engine) emitMultisigConfigured(c *MultisigConfig, now int64) {
	e.sink.Emit(sdk.Event{Name: EvMultisigConfigured, Attrs: map[string]string{
		"project":   u64Attr(c.ProjectID),
		"signers":   addrsAttr(c.Signers),
		"threshold": strconv.Itoa(int(c.Threshold)),
		"timestamp": i64Attr(now),
	}})
}
