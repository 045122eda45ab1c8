package matching

import (
	"testing"

	"github.com/sasank-sasi/Vertx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefilter(t *testing.T) {
	pool := []models.FounderRecord{
		{CompanyName: "HealthBridge", Industry: "HealthTech", Verticals: "Telemedicine, AI Diagnostics"},
		{CompanyName: "PayFlow", Industry: "FinTech", Verticals: "Payments, SME Banking"},
		{CompanyName: "MediScan", Industry: "HealthTech", Verticals: "Imaging"},
	}

	tests := []struct {
		name  string
		query models.FounderInput
		want  []Candidate
	}{
		{
			name: "industry and verticals overlap",
			query: models.FounderInput{
				Industry:  "HealthTech",
				Verticals: "AI Diagnostics, Healthcare",
			},
			want: []Candidate{
				{Record: pool[0], Strength: 2},
				{Record: pool[2], Strength: 1},
			},
		},
		{
			name: "industry only",
			query: models.FounderInput{
				Industry:  "FinTech",
				Verticals: "Lending",
			},
			want: []Candidate{
				{Record: pool[1], Strength: 1},
			},
		},
		{
			name: "no overlap",
			query: models.FounderInput{
				Industry:  "AgriTech",
				Verticals: "Drones",
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prefilter(tt.query, pool)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrefilterCaseInsensitive(t *testing.T) {
	pool := []models.FounderRecord{
		{CompanyName: "CyberShield AI", Industry: "Cybersecurity", Verticals: "Threat Detection"},
	}

	got := Prefilter(models.FounderInput{Industry: "CYBERSECURITY", Verticals: "none"}, pool)
	require.Len(t, got, 1)
	assert.Equal(t, "CyberShield AI", got[0].Record.CompanyName)
}

func TestPrefilterStableWithinStrength(t *testing.T) {
	pool := []models.FounderRecord{
		{CompanyName: "A", Industry: "EdTech", Verticals: "Test Prep"},
		{CompanyName: "B", Industry: "EdTech", Verticals: "Languages"},
		{CompanyName: "C", Industry: "EdTech", Verticals: "Test Prep"},
	}

	got := Prefilter(models.FounderInput{Industry: "EdTech", Verticals: "Test Prep"}, pool)
	require.Len(t, got, 3)

	// Strength 2 candidates first, dataset order preserved inside each tier.
	assert.Equal(t, "A", got[0].Record.CompanyName)
	assert.Equal(t, "C", got[1].Record.CompanyName)
	assert.Equal(t, "B", got[2].Record.CompanyName)
	assert.Equal(t, 2, got[0].Strength)
	assert.Equal(t, 1, got[2].Strength)
}

func TestVerticalTokensSplitsOnCommaAndSpace(t *testing.T) {
	tokens := verticalTokens("AI Diagnostics, Remote Monitoring")
	for _, want := range []string{"ai", "diagnostics", "remote", "monitoring"} {
		_, ok := tokens[want]
		assert.True(t, ok, "missing token %q", want)
	}
}
