package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataquad/recruitops/internal/repositories"
)

func TestRowInt(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int
	}{
		{"nil", nil, 0},
		{"int", 42, 42},
		{"int64", int64(42), 42},
		{"int32", int32(-7), -7},
		{"uint64", uint64(9), 9},
		{"float64 truncates", 3.9, 3},
		{"float64 negative truncates", -3.9, -3},
		{"json number", json.Number("12"), 12},
		{"numeric string", "15", 15},
		{"decimal string", "15.8", 15},
		{"bytes", []byte("21"), 21},
		{"garbage string", "n/a", 0},
		{"unknown type", struct{}{}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, rowInt(c.in))
		})
	}
}

func TestRowString(t *testing.T) {
	row := repositories.Row{"a": "x", "b": []byte("y"), "c": nil}
	assert.Equal(t, "x", rowString(row, "a"))
	assert.Equal(t, "y", rowString(row, "b"))
	assert.Equal(t, "", rowString(row, "c"))
	assert.Equal(t, "", rowString(row, "missing"))
}

func TestRowTimestamp(t *testing.T) {
	ts := time.Date(2025, 4, 30, 14, 5, 9, 0, time.Local)
	row := repositories.Row{"when": ts, "raw": "2025-01-01 00:00:00", "none": nil}

	assert.Equal(t, "2025-04-30 14:05:09", rowTimestamp(row, "when"))
	assert.Equal(t, "2025-01-01 00:00:00", rowTimestamp(row, "raw"))
	assert.Equal(t, "", rowTimestamp(row, "none"))
}

func TestCurrentInterviewStatus(t *testing.T) {
	t.Run("first element of history wins", func(t *testing.T) {
		raw := statusJSON("Placed", "Selected", "Scheduled")
		assert.Equal(t, "Placed", currentInterviewStatus(raw))
	})

	t.Run("plain value passes through", func(t *testing.T) {
		assert.Equal(t, "Scheduled", currentInterviewStatus("Scheduled"))
	})

	t.Run("malformed json falls back to raw", func(t *testing.T) {
		assert.Equal(t, `[{"status":`, currentInterviewStatus(`[{"status":`))
	})

	t.Run("empty array falls back to raw", func(t *testing.T) {
		assert.Equal(t, "[]", currentInterviewStatus("[]"))
	})

	t.Run("leading whitespace still detected as array", func(t *testing.T) {
		raw := "  " + statusJSON("Rejected")
		assert.Equal(t, "Rejected", currentInterviewStatus(raw))
	})
}

func TestMapSubmittedCandidateRowsDropsBadRows(t *testing.T) {
	rows := []repositories.Row{
		{"candidateId": "C1", "fullName": "Asha", "clientName": "Acme"},
		{"fullName": "no id"},
		{"candidateId": nil},
		{"candidateId": "C2", "clientName": "Beta"},
	}

	out, dropped := MapSubmittedCandidateRows(rows)
	require.Len(t, out, 2)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, "C1", out[0].CandidateID)
	assert.Equal(t, "Acme", out[0].ClientName)
	assert.Equal(t, "C2", out[1].CandidateID)
}

func TestMapInterviewScheduledRows(t *testing.T) {
	when := time.Date(2025, 5, 2, 10, 30, 0, 0, time.Local)
	rows := []repositories.Row{
		{
			"candidateId":       "C1",
			"interviewStatus":   statusJSON("Selected", "Scheduled"),
			"interviewLevel":    "L2",
			"interviewDateTime": when,
			"clientName":        "Acme",
		},
	}

	out, dropped := MapInterviewScheduledRows(rows)
	require.Len(t, out, 1)
	assert.Zero(t, dropped)
	assert.Equal(t, "Selected", out[0].InterviewStatus)
	assert.Equal(t, "2025-05-02 10:30:00", out[0].InterviewDateTime)
}

func TestMapJobDetailRowsCoercesPositions(t *testing.T) {
	rows := []repositories.Row{
		{"jobId": "JOB-1", "noOfPositions": int64(3), "clientName": "Acme"},
		{"jobId": "JOB-2", "noOfPositions": nil},
		{"noOfPositions": 5},
	}

	out, dropped := MapJobDetailRows(rows)
	require.Len(t, out, 2)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 3, out[0].NoOfPositions)
	assert.Equal(t, 0, out[1].NoOfPositions)
}

func TestMapClientDetailRowsRequiresClientName(t *testing.T) {
	rows := []repositories.Row{
		{"clientName": "Acme", "clientSpocName": "Ravi"},
		{"clientId": "CL2"},
	}

	out, dropped := MapClientDetailRows(rows)
	require.Len(t, out, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "Ravi", out[0].ClientSpocName)
}
