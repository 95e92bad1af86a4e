package sdk

import (
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is the keyed durable store the engine writes its records into. The
// host guarantees atomic create/read/update per key; Get returns nil when the
// key is absent.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// TokenLedger moves receipt units between holding structures on the engine's
// instruction. The engine holds no custody logic of its own; a failed move
// aborts the calling operation before any record is written.
type TokenLedger interface {
	// Draw pulls units from the participant's holding into the vault escrow.
	Draw(from Address, mint Mint, amount uint64) error
	// Transfer returns escrowed units from the vault to the participant.
	Transfer(to Address, mint Mint, amount uint64) error
}

// Event is the structured record published after every state-mutating
// operation. Attrs carry the operation's resulting field values.
type Event struct {
	Name  string
	Attrs map[string]string
}

// EventSink receives events. Purely observational, no acknowledgment.
type EventSink interface {
	Emit(ev Event)
}

// LogSink renders events through zerolog. Each event gets a fresh event id so
// downstream consumers can dedup replayed streams.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink builds a sink writing to w.
func NewLogSink(w io.Writer) *LogSink {
	return &LogSink{
		logger: zerolog.New(w).With().Timestamp().Str("module", "contract").Logger(),
	}
}

// Emit writes the event attrs in sorted key order so log lines stay stable.
func (s *LogSink) Emit(ev Event) {
	e := s.logger.Info().Str("event_id", uuid.NewString())
	keys := make([]string, 0, len(ev.Attrs))
	for k := range ev.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e = e.Str(k, ev.Attrs[k])
	}
	e.Msg(ev.Name)
}

// JournalLedger is a TokenLedger that only journals transfer instructions.
// The actual custody moves are executed by an external collaborator that
// tails the journal.
type JournalLedger struct {
	logger zerolog.Logger
}

// NewJournalLedger builds a journal writing to w.
func NewJournalLedger(w io.Writer) *JournalLedger {
	return &JournalLedger{
		logger: zerolog.New(w).With().Timestamp().Str("module", "ledger").Logger(),
	}
}

// Draw journals an escrow-in instruction.
func (l *JournalLedger) Draw(from Address, mint Mint, amount uint64) error {
	l.logger.Info().
		Str("op", "draw").
		Str("from", from.String()).
		Str("mint", mint.String()).
		Uint64("amount", amount).
		Msg("transfer instruction")
	return nil
}

// Transfer journals an escrow-out instruction.
func (l *JournalLedger) Transfer(to Address, mint Mint, amount uint64) error {
	l.logger.Info().
		Str("op", "transfer").
		Str("to", to.String()).
		Str("mint", mint.String()).
		Uint64("amount", amount).
		Msg("transfer instruction")
	return nil
}
