package domain

import "time"

// RiskLevel is the categorical severity attached to an alert or scan result.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// AlertStatus is the lifecycle state of an alert on the backend.
type AlertStatus string

const (
	AlertActive    AlertStatus = "active"
	AlertExpired   AlertStatus = "expired"
	AlertCancelled AlertStatus = "cancelled"
)

// Alert mirrors the backend alert resource. The backend is the source of truth;
// the portal only holds a copy for the lifetime of one view.
type Alert struct {
	ID              string         `json:"id,omitempty"`
	Title           string         `json:"title"`
	Message         string         `json:"message"`
	Forest          string         `json:"forest,omitempty"`
	District        string         `json:"district,omitempty"`
	Province        string         `json:"province,omitempty"`
	Latitude        *float64       `json:"latitude,omitempty"`
	Longitude       *float64       `json:"longitude,omitempty"`
	RiskLevel       RiskLevel      `json:"risk_level,omitempty"`
	Probability     *float64       `json:"probability,omitempty"`
	WeatherSnapshot map[string]any `json:"weather_data,omitempty"`
	Precautions     string         `json:"precautions,omitempty"`
	Status          AlertStatus    `json:"status,omitempty"`
	CreatedAt       *time.Time     `json:"created_at,omitempty"`
	ExpiresAt       *time.Time     `json:"expires_at,omitempty"`
	CreatedBy       string         `json:"created_by,omitempty"`
}

// AlertUpdate carries the mutable fields of an alert; nil fields are left as is.
type AlertUpdate struct {
	Title       *string      `json:"title,omitempty"`
	Message     *string      `json:"message,omitempty"`
	Status      *AlertStatus `json:"status,omitempty"`
	Precautions *string      `json:"precautions,omitempty"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
}

// DeleteOutcome reports what a delete did. Deleting an id that no longer
// exists is not an error.
type DeleteOutcome string

const (
	DeleteOutcomeDeleted  DeleteOutcome = "deleted"
	DeleteOutcomeNotFound DeleteOutcome = "not_found"
)

// Location is a geographic point as the backend encodes it.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HighRiskDistrict is one entry of a Nepal scan.
type HighRiskDistrict struct {
	District string         `json:"district"`
	Location Location       `json:"location"`
	Risk     RiskLevel      `json:"risk"`
	Details  map[string]any `json:"details,omitempty"`
}

// ScanResult is the backend response to a Nepal scan.
type ScanResult struct {
	HighRiskDistricts []HighRiskDistrict `json:"high_risk_districts"`
}
