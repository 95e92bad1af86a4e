package contract

import (
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"forestlab/sdk"
)

// Engine is the ledger state machine. All collaborators are injected: the
// keyed store it persists records into, the token ledger it instructs, the
// event sink it publishes to and the clock it stamps records with. The engine
// itself holds no mutable fields, so a single instance serves concurrent
// callers as long as the host serializes operations.
type Engine struct {
	state  sdk.State
	ledger sdk.TokenLedger
	sink   sdk.EventSink
	clock  clock.Clock
	log    zerolog.Logger
}

// New wires an engine from its collaborators.
func New(state sdk.State, ledger sdk.TokenLedger, sink sdk.EventSink, clk clock.Clock, log zerolog.Logger) *Engine {
	return &Engine{
		state:  state,
		ledger: ledger,
		sink:   sink,
		clock:  clk,
		log:    log.With().Str("component", "engine").Logger(),
	}
}

// nowUnix reads the injected clock once per operation so every record touched
// by one call carries the same timestamp.
func (e *Engine) nowUnix() int64 {
	return e.clock.Now().Unix()
}

// run executes op against a write buffer and commits only on success, so a
// rejected operation leaves every record untouched.
func (e *Engine) run(name string, op func(s *stagedState) error) error {
	staged := newStaged(e.state)
	if err := op(staged); err != nil {
		e.log.Debug().Str("op", name).Err(err).Msg("operation rejected")
		return err
	}
	staged.commit()
	return nil
}
