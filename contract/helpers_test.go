package contract_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"forestlab/contract"
	"forestlab/sdk"
)

const (
	authority = sdk.Address("addr:authority")
	admin     = sdk.Address("addr:admin")
	creator   = sdk.Address("addr:creator")
	alice     = sdk.Address("addr:alice")
	bob       = sdk.Address("addr:bob")
	outsider  = sdk.Address("addr:outsider")

	receiptMint = sdk.Mint("mint:receipt")
	targetMint  = sdk.Mint("mint:target")
)

// testRig bundles the engine with its mocked collaborators so scenarios can
// drive time and inspect effects.
type testRig struct {
	engine *contract.Engine
	state  *sdk.MockState
	ledger *sdk.MockLedger
	sink   *sdk.MockSink
	clock  *clock.Mock
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	rig := &testRig{
		state:  sdk.NewMockState(),
		ledger: sdk.NewMockLedger(),
		sink:   sdk.NewMockSink(),
		clock:  clock.NewMock(),
	}
	rig.clock.Set(time.Unix(1_700_000_000, 0))
	rig.engine = contract.New(rig.state, rig.ledger, rig.sink, rig.clock, zerolog.Nop())
	return rig
}

// initPlatform initializes the registry with sane defaults.
func (r *testRig) initPlatform(t *testing.T) {
	t.Helper()
	require.NoError(t, r.engine.InitializePlatform(authority, 250, 100, admin))
}

// registerProject creates a default active project and returns its id.
func (r *testRig) registerProject(t *testing.T) uint64 {
	t.Helper()
	id, err := r.engine.RegisterProject(creator, contract.ProjectParams{
		Name:        "Forest One",
		Symbol:      "FST",
		Description: "reforestation staking pool",
		Website:     "https://forest.example",
		ImageURI:    "https://forest.example/logo.png",
		FundingGoal: 1_000_000,
		Duration:    90 * 86400,
		ReceiptMint: receiptMint,
		ApyEstimate: 500,
	})
	require.NoError(t, err)
	return id
}

// setup is the common scenario opening: platform plus one project.
func (r *testRig) setup(t *testing.T) uint64 {
	t.Helper()
	r.initPlatform(t)
	return r.registerProject(t)
}

// stake books a deposit for a participant, failing the test on rejection.
func (r *testRig) stake(t *testing.T, who sdk.Address, projectID, amount, units uint64) {
	t.Helper()
	require.NoError(t, r.engine.RecordStake(who, projectID, amount, units))
}

// advance moves the mock clock forward.
func (r *testRig) advance(d time.Duration) {
	r.clock.Add(d)
}

func (r *testRig) now() int64 {
	return r.clock.Now().Unix()
}

// mustProject reads a project that has to exist.
func (r *testRig) mustProject(t *testing.T, id uint64) *contract.Project {
	t.Helper()
	p, err := r.engine.GetProject(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

// mustPosition reads a stake position that has to exist.
func (r *testRig) mustPosition(t *testing.T, id uint64, who sdk.Address) *contract.StakePosition {
	t.Helper()
	p, err := r.engine.GetStakePosition(id, who)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

// mustPlatform reads the initialized registry.
func (r *testRig) mustPlatform(t *testing.T) *contract.Platform {
	t.Helper()
	p, err := r.engine.GetPlatform()
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}
