package sdk

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSinkEmitsStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(&buf)

	sink.Emit(Event{Name: "project_staked", Attrs: map[string]string{
		"project": "1",
		"amount":  "10000",
	}})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "project_staked", line["message"])
	assert.Equal(t, "1", line["project"])
	assert.Equal(t, "10000", line["amount"])
	assert.NotEmpty(t, line["event_id"])
}

func TestJournalLedgerRecordsInstructions(t *testing.T) {
	var buf bytes.Buffer
	ledger := NewJournalLedger(&buf)

	require.NoError(t, ledger.Draw("addr:alice", "mint:receipt", 500))
	require.NoError(t, ledger.Transfer("addr:alice", "mint:receipt", 500))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var draw map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &draw))
	assert.Equal(t, "draw", draw["op"])
	assert.Equal(t, "addr:alice", draw["from"])
	assert.Equal(t, float64(500), draw["amount"])

	var transfer map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &transfer))
	assert.Equal(t, "transfer", transfer["op"])
	assert.Equal(t, "addr:alice", transfer["to"])
}

func TestMockStateGetCopies(t *testing.T) {
	m := NewMockState()
	m.Set("k", "v")

	first := m.Get("k")
	require.NotNil(t, first)
	*first = "mutated"

	second := m.Get("k")
	require.NotNil(t, second)
	assert.Equal(t, "v", *second)
}
