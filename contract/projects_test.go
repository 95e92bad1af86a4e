package contract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestlab/contract"
	"forestlab/sdk"
)

func TestRegisterProject(t *testing.T) {
	rig := newTestRig(t)
	rig.initPlatform(t)

	id := rig.registerProject(t)
	assert.Equal(t, uint64(1), id)

	p := rig.mustProject(t, id)
	assert.Equal(t, creator, p.Creator)
	assert.Equal(t, contract.StatusActive, p.Status)
	assert.Equal(t, uint16(contract.DefaultManagerFeeBps), p.ManagerFee)
	assert.Equal(t, creator, p.PayoutWallet)
	assert.Equal(t, rig.now()+90*86400, p.EndTime)
	assert.Zero(t, p.FundsRaised)
	assert.Zero(t, p.SupportersCount)

	assert.Equal(t, uint64(1), rig.mustPlatform(t).TotalProjects)

	ids, err := rig.engine.ListProjectIDs()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids)
}

func TestRegisterProjectSequentialIDs(t *testing.T) {
	rig := newTestRig(t)
	rig.initPlatform(t)

	first := rig.registerProject(t)
	second := rig.registerProject(t)
	assert.Equal(t, first+1, second)

	ids, err := rig.engine.ListProjectIDs()
	require.NoError(t, err)
	assert.Equal(t, []uint64{first, second}, ids)
}

func TestRegisterProjectValidation(t *testing.T) {
	rig := newTestRig(t)
	rig.initPlatform(t)

	base := contract.ProjectParams{
		Name:        "Forest",
		Symbol:      "FST",
		FundingGoal: 1000,
		Duration:    86400,
		ReceiptMint: receiptMint,
	}

	for _, tc := range []struct {
		name   string
		mutate func(*contract.ProjectParams)
		want   error
	}{
		{"empty name", func(p *contract.ProjectParams) { p.Name = "" }, contract.ErrEmptyName},
		{"empty symbol", func(p *contract.ProjectParams) { p.Symbol = "" }, contract.ErrEmptySymbol},
		{"zero goal", func(p *contract.ProjectParams) { p.FundingGoal = 0 }, contract.ErrInvalidFundingGoal},
		{"zero duration", func(p *contract.ProjectParams) { p.Duration = 0 }, contract.ErrInvalidDuration},
		{"negative duration", func(p *contract.ProjectParams) { p.Duration = -1 }, contract.ErrInvalidDuration},
		{"name too long", func(p *contract.ProjectParams) { p.Name = strings.Repeat("x", 33) }, contract.ErrTextTooLong},
		{"symbol too long", func(p *contract.ProjectParams) { p.Symbol = strings.Repeat("x", 13) }, contract.ErrTextTooLong},
		{"description too long", func(p *contract.ProjectParams) { p.Description = strings.Repeat("x", 251) }, contract.ErrTextTooLong},
	} {
		t.Run(tc.name, func(t *testing.T) {
			params := base
			tc.mutate(&params)
			_, err := rig.engine.RegisterProject(creator, params)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegisterProjectInactivePlatform(t *testing.T) {
	rig := newTestRig(t)
	rig.initPlatform(t)

	inactive := false
	require.NoError(t, rig.engine.UpdatePlatformSettings(authority, nil, nil, nil, &inactive))

	_, err := rig.engine.RegisterProject(creator, contract.ProjectParams{
		Name: "Forest", Symbol: "FST", FundingGoal: 1, Duration: 1, ReceiptMint: receiptMint,
	})
	assert.ErrorIs(t, err, contract.ErrPlatformInactive)
}

func TestUpdateProjectFee(t *testing.T) {
	rig := newTestRig(t)
	id := rig.setup(t)

	wallet := sdk.Address("addr:payout")
	require.NoError(t, rig.engine.UpdateProjectFee(creator, id, 1000, &wallet))

	p := rig.mustProject(t, id)
	assert.Equal(t, uint16(1000), p.ManagerFee)
	assert.Equal(t, wallet, p.PayoutWallet)

	// nil payout leaves the wallet alone
	require.NoError(t, rig.engine.UpdateProjectFee(creator, id, 500, nil))
	assert.Equal(t, wallet, rig.mustProject(t, id).PayoutWallet)
}

func TestUpdateProjectFeeBounds(t *testing.T) {
	rig := newTestRig(t)
	id := rig.setup(t)

	err := rig.engine.UpdateProjectFee(creator, id, 10001, nil)
	assert.ErrorIs(t, err, contract.ErrInvalidFeePercentage)

	err = rig.engine.UpdateProjectFee(outsider, id, 100, nil)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	err = rig.engine.UpdateProjectFee(creator, 99, 100, nil)
	assert.ErrorIs(t, err, contract.ErrProjectNotFound)
}

func TestUpdateProjectStatus(t *testing.T) {
	rig := newTestRig(t)
	id := rig.setup(t)

	for _, caller := range []sdk.Address{creator, authority, admin} {
		require.NoError(t, rig.engine.UpdateProjectStatus(caller, id, contract.StatusPaused))
		require.NoError(t, rig.engine.UpdateProjectStatus(caller, id, contract.StatusActive))
	}

	err := rig.engine.UpdateProjectStatus(outsider, id, contract.StatusPaused)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
}

func TestUpdateProjectStatusAnyTransition(t *testing.T) {
	rig := newTestRig(t)
	id := rig.setup(t)

	// the enum is flat: cancelled back to active is legal
	require.NoError(t, rig.engine.UpdateProjectStatus(creator, id, contract.StatusCancelled))
	require.NoError(t, rig.engine.UpdateProjectStatus(creator, id, contract.StatusActive))
	require.NoError(t, rig.engine.UpdateProjectStatus(creator, id, contract.StatusCompleted))
	assert.Equal(t, contract.StatusCompleted, rig.mustProject(t, id).Status)
}

func TestUpdateProjectStatusInvalidValue(t *testing.T) {
	rig := newTestRig(t)
	id := rig.setup(t)

	err := rig.engine.UpdateProjectStatus(creator, id, contract.ProjectStatus(7))
	assert.ErrorIs(t, err, contract.ErrInvalidStatus)
	assert.Equal(t, contract.StatusActive, rig.mustProject(t, id).Status)
}
