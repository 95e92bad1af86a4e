package contract

import "forestlab/sdk"

// stagedState buffers writes for the duration of one operation. Reads see the
// operation's own pending writes first and fall through to the backing store;
// nothing reaches the backing store until commit. An operation that returns an
// error simply never commits, so a failed call leaves all records unchanged.
type stagedState struct {
	base   sdk.State
	writes map[string]*string // nil marks a delete
	order  []string
}

func newStaged(base sdk.State) *stagedState {
	return &stagedState{
		base:   base,
		writes: make(map[string]*string),
	}
}

func (s *stagedState) Get(key string) *string {
	if val, ok := s.writes[key]; ok {
		if val == nil {
			return nil
		}
		cp := *val
		return &cp
	}
	return s.base.Get(key)
}

func (s *stagedState) Set(key, value string) {
	if _, ok := s.writes[key]; !ok {
		s.order = append(s.order, key)
	}
	s.writes[key] = &value
}

func (s *stagedState) Delete(key string) {
	if _, ok := s.writes[key]; !ok {
		s.order = append(s.order, key)
	}
	s.writes[key] = nil
}

// commit applies the buffered writes to the backing store in first-write
// order, keeping replays deterministic.
func (s *stagedState) commit() {
	for _, key := range s.order {
		val := s.writes[key]
		if val == nil {
			s.base.Delete(key)
			continue
		}
		s.base.Set(key, *val)
	}
}
