package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGroupsKeepsFirstSeenOrder(t *testing.T) {
	groups := NewClientGroups[SubmittedCandidate]()
	groups.Add("acme", SubmittedCandidate{CandidateID: "C1", ClientName: "Acme"})
	groups.Add("beta", SubmittedCandidate{CandidateID: "C2", ClientName: "beta"})
	groups.Add("acme", SubmittedCandidate{CandidateID: "C3", ClientName: "ACME"})

	assert.Equal(t, []string{"acme", "beta"}, groups.Keys())
	assert.Equal(t, 2, groups.Len())

	acme := groups.Get("acme")
	require.Len(t, acme, 2)
	assert.Equal(t, "C1", acme[0].CandidateID)
	assert.Equal(t, "C3", acme[1].CandidateID)
}

func TestClientGroupsMarshalJSONPreservesOrder(t *testing.T) {
	groups := NewClientGroups[JobDetails]()
	groups.Add("zeta", JobDetails{JobID: "JOB-1", ClientName: "Zeta"})
	groups.Add("acme", JobDetails{JobID: "JOB-2", ClientName: "Acme"})
	groups.Add("zeta", JobDetails{JobID: "JOB-3", ClientName: "zeta"})

	data, err := json.Marshal(groups)
	require.NoError(t, err)

	// zeta appeared first in the input so it must come first in the output.
	assert.Less(t,
		strings.Index(string(data), `"zeta"`),
		strings.Index(string(data), `"acme"`),
	)

	var decoded map[string][]JobDetails
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded["zeta"], 2)
	assert.Equal(t, "JOB-1", decoded["zeta"][0].JobID)
	assert.Equal(t, "JOB-3", decoded["zeta"][1].JobID)
}

func TestClientGroupsMarshalJSONEmpty(t *testing.T) {
	groups := NewClientGroups[ClientDetails]()
	data, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestUserStatsOmitsUnusedCounters(t *testing.T) {
	n := 5
	employee := UserStats{
		EmployeeID:          "E1",
		Role:                RoleEmployee,
		NumberOfSubmissions: &n,
	}

	data, err := json.Marshal(employee)
	require.NoError(t, err)

	assert.Contains(t, string(data), "numberOfSubmissions")
	assert.NotContains(t, string(data), "selfSubmissions")
	assert.NotContains(t, string(data), "teamPlacements")
}
