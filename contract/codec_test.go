package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestlab/contract"
	"forestlab/sdk"
)

func TestProjectCodecRoundTrip(t *testing.T) {
	in := &contract.Project{
		Creator:         creator,
		Name:            "Forest One",
		Symbol:          "FST",
		Description:     "reforestation staking pool",
		Website:         "https://forest.example",
		ImageURI:        "https://forest.example/logo.png",
		FundingGoal:     1_000_000,
		FundsRaised:     42_000,
		SupportersCount: 7,
		ReceiptMint:     receiptMint,
		Status:          contract.StatusPaused,
		CreatedAt:       1_700_000_000,
		EndTime:         1_707_776_000,
		FundsClaimed:    true,
		ManagerFee:      250,
		PayoutWallet:    sdk.Address("addr:payout"),
		ApyEstimate:     1234,
		TotalRewards:    9_750,
	}

	out, err := contract.DecodeProject(contract.EncodeProject(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCrankInfoCodecRoundTrip(t *testing.T) {
	in := &contract.CrankInfo{
		LastExecutedEpoch: 512,
		LastExecutionTime: 1_700_000_123,
		ExecutionCount:    99,
		AuthorizedCrankers: []sdk.Address{
			"addr:one", "addr:two", "addr:three",
		},
	}
	out, err := contract.DecodeCrankInfo(contract.EncodeCrankInfo(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCrankInfoCodecEmptyList(t *testing.T) {
	out, err := contract.DecodeCrankInfo(contract.EncodeCrankInfo(&contract.CrankInfo{}))
	require.NoError(t, err)
	assert.Empty(t, out.AuthorizedCrankers)
}

func TestDecodeTruncatedRecord(t *testing.T) {
	data := contract.EncodeLockup(&contract.Lockup{
		Participant: alice,
		ProjectID:   1,
		ReceiptMint: receiptMint,
		Amount:      5_000,
		StartTime:   1_700_000_000,
		EndTime:     1_700_086_400,
		BonusBps:    250,
	})

	_, err := contract.DecodeLockup(data[:len(data)/2])
	assert.Error(t, err)

	_, err = contract.DecodeLockup(nil)
	assert.Error(t, err)
}

func TestEncodingIsDeterministic(t *testing.T) {
	p := &contract.Platform{
		Authority:      authority,
		AdminWallet:    admin,
		PlatformFee:    250,
		MinStakeAmount: 100,
		IsActive:       true,
		TotalProjects:  3,
		TotalStaked:    1_000_000,
		CreatedAt:      1_700_000_000,
	}
	assert.Equal(t, contract.EncodePlatform(p), contract.EncodePlatform(p))
}
