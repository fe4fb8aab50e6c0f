package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Threshold operator constants
const (
	ThresholdOpBelow = "below"
	ThresholdOpAbove = "above"
)

// Threshold is a fleet-wide alerting rule configured per tenant, evaluated
// against reported metrics such as fuel levels or speed.
type Threshold struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	Metric    string    `json:"metric"`
	Operator  string    `json:"operator"`
	Value     float64   `json:"value"`
	Severity  string    `json:"severity"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewThreshold validates and creates a threshold rule.
func NewThreshold(orgID, name, metric, operator string, value float64, severity string) (*Threshold, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if name == "" {
		return nil, errors.New("threshold name is required")
	}
	if metric == "" {
		return nil, errors.New("threshold metric is required")
	}
	if operator != ThresholdOpBelow && operator != ThresholdOpAbove {
		return nil, errors.New("invalid threshold operator: " + operator)
	}
	if severity == "" {
		severity = AlertPriorityMedium
	}
	if !ValidAlertPriority(severity) {
		return nil, errors.New("invalid threshold severity: " + severity)
	}

	now := time.Now()
	return &Threshold{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		Name:      name,
		Metric:    metric,
		Operator:  operator,
		Value:     value,
		Severity:  severity,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Breached reports whether an observed value trips the rule.
func (t *Threshold) Breached(observed float64) bool {
	if !t.Enabled {
		return false
	}
	if t.Operator == ThresholdOpBelow {
		return observed < t.Value
	}
	return observed > t.Value
}
