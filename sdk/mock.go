package sdk

// MockState is an in-memory State for tests.
type MockState struct {
	db map[string]string
}

// NewMockState returns an empty store.
func NewMockState() *MockState {
	return &MockState{db: make(map[string]string)}
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
}

// Len reports how many keys are stored, handy for leak checks in tests.
func (m *MockState) Len() int {
	return len(m.db)
}

// MockTransfer records a single instruction issued to the MockLedger.
type MockTransfer struct {
	Op     string // "draw" or "transfer"
	Who    Address
	Mint   Mint
	Amount uint64
}

// MockLedger records transfer instructions and can be primed to fail.
type MockLedger struct {
	Calls   []MockTransfer
	FailErr error
}

// NewMockLedger returns a ledger that accepts every instruction.
func NewMockLedger() *MockLedger {
	return &MockLedger{}
}

func (l *MockLedger) Draw(from Address, mint Mint, amount uint64) error {
	if l.FailErr != nil {
		return l.FailErr
	}
	l.Calls = append(l.Calls, MockTransfer{Op: "draw", Who: from, Mint: mint, Amount: amount})
	return nil
}

func (l *MockLedger) Transfer(to Address, mint Mint, amount uint64) error {
	if l.FailErr != nil {
		return l.FailErr
	}
	l.Calls = append(l.Calls, MockTransfer{Op: "transfer", Who: to, Mint: mint, Amount: amount})
	return nil
}

// MockSink collects emitted events for assertions.
type MockSink struct {
	Events []Event
}

// NewMockSink returns an empty sink.
func NewMockSink() *MockSink {
	return &MockSink{}
}

func (s *MockSink) Emit(ev Event) {
	s.Events = append(s.Events, ev)
}

// Last returns the most recent event, or nil when nothing was emitted.
func (s *MockSink) Last() *Event {
	if len(s.Events) == 0 {
		return nil
	}
	return &s.Events[len(s.Events)-1]
}

// Named returns all events carrying the given name.
func (s *MockSink) Named(name string) []Event {
	var out []Event
	for _, ev := range s.Events {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}
