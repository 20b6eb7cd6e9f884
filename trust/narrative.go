package trust

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the analysis service settings. When no URL is configured
// the dashboard falls back to a locally generated narrative.
type Config struct {
	AnalysisURL string `envconfig:"TRUST_ANALYSIS_URL"`
}

// Narrator produces the human-readable summary for a dashboard
type Narrator interface {
	Narrate(stats CampaignStats, report Report) (string, error)
}

// NewNarrator returns the AI analysis client when configured, and the
// local template narrator otherwise
func NewNarrator() (Narrator, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.AnalysisURL == "" {
		return localNarrator{}, nil
	}
	return &AnalysisClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        cfg.AnalysisURL,
	}, nil
}

// AnalysisClient fetches an AI-generated narrative from the analysis service
type AnalysisClient struct {
	httpClient *http.Client
	url        string
}

var _ Narrator = (*AnalysisClient)(nil)

// Narrate requests a narrative for the campaign's scored activity
func (c *AnalysisClient) Narrate(stats CampaignStats, report Report) (string, error) {
	payload := struct {
		Stats  CampaignStats `json:"stats"`
		Report Report        `json:"report"`
	}{stats, report}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := c.httpClient.Post(c.url, "application/json", strings.NewReader(string(jsonData)))
	if err != nil {
		return "", fmt.Errorf("failed to reach analysis service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("analysis request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Narrative string `json:"narrative"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if result.Narrative == "" {
		return "", fmt.Errorf("analysis service returned no narrative")
	}

	return result.Narrative, nil
}

// localNarrator is the offline fallback
type localNarrator struct{}

var _ Narrator = localNarrator{}

func (localNarrator) Narrate(stats CampaignStats, report Report) (string, error) {
	status := "active"
	if !stats.Active {
		status = "closed"
	} else if report.DeadlinePassed {
		status = "past its deadline"
	}

	return fmt.Sprintf(
		"%q is %s with %d registered donations and %d withdrawals (ratio %.2f). Composite trust score %d/100, grade %s.",
		stats.Title, status, stats.Donations, stats.Withdrawals,
		report.WithdrawalRatio, report.Score, report.Grade,
	), nil
}
