package trust

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalNarrator(t *testing.T) {
	stats := CampaignStats{
		Title:       "Clean Water",
		Deadline:    now.Add(time.Hour),
		Active:      true,
		Donations:   10,
		Withdrawals: 1,
	}
	report := BuildReport(stats, now)

	narrative, err := localNarrator{}.Narrate(stats, report)
	require.NoError(t, err)
	assert.Contains(t, narrative, "Clean Water")
	assert.Contains(t, narrative, "active")
	assert.Contains(t, narrative, report.Grade)
}

func TestLocalNarratorStatus(t *testing.T) {
	closed := CampaignStats{Title: "Done", Deadline: now.Add(time.Hour), Active: false}
	narrative, err := localNarrator{}.Narrate(closed, BuildReport(closed, now))
	require.NoError(t, err)
	assert.Contains(t, narrative, "closed")

	overdue := CampaignStats{Title: "Late", Deadline: now.Add(-time.Hour), Active: true}
	narrative, err = localNarrator{}.Narrate(overdue, BuildReport(overdue, now))
	require.NoError(t, err)
	assert.Contains(t, narrative, "past its deadline")
}

func TestAnalysisClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Stats  CampaignStats `json:"stats"`
			Report Report        `json:"report"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Clean Water", payload.Stats.Title)

		json.NewEncoder(w).Encode(map[string]string{
			"narrative": "This campaign shows strong supporter engagement.",
		})
	}))
	defer server.Close()

	client := &AnalysisClient{
		httpClient: server.Client(),
		url:        server.URL,
	}

	stats := CampaignStats{Title: "Clean Water", Deadline: now.Add(time.Hour), Active: true, Donations: 5}
	narrative, err := client.Narrate(stats, BuildReport(stats, now))
	require.NoError(t, err)
	assert.Equal(t, "This campaign shows strong supporter engagement.", narrative)
}

func TestAnalysisClientErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("overloaded"))
	}))
	defer server.Close()

	client := &AnalysisClient{httpClient: server.Client(), url: server.URL}

	stats := CampaignStats{Title: "X", Deadline: now.Add(time.Hour)}
	_, err := client.Narrate(stats, BuildReport(stats, now))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestAnalysisClientRejectsEmptyNarrative(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := &AnalysisClient{httpClient: server.Client(), url: server.URL}

	stats := CampaignStats{Title: "X", Deadline: now.Add(time.Hour)}
	_, err := client.Narrate(stats, BuildReport(stats, now))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no narrative")
}
