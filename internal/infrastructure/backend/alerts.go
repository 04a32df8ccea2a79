package backend

import (
	"context"
	"net/http"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

func (cl *Client) ListAlerts(ctx context.Context, token string) ([]domain.Alert, error) {
	var alerts []domain.Alert
	if err := cl.do(ctx, call{op: "alerts.list", method: http.MethodGet, path: "/admin/alerts", token: token}, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (cl *Client) GetAlert(ctx context.Context, token, id string) (*domain.Alert, error) {
	var alert domain.Alert
	if err := cl.do(ctx, call{op: "alerts.get", method: http.MethodGet, path: "/admin/alerts/" + escape(id), token: token}, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// CreateAlert is not idempotent: every successful call creates a new alert.
func (cl *Client) CreateAlert(ctx context.Context, token string, alert domain.Alert) (*domain.Alert, error) {
	alert.ID = ""
	var created domain.Alert
	if err := cl.do(ctx, call{op: "alerts.create", method: http.MethodPost, path: "/admin/alerts", token: token, json: alert}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (cl *Client) UpdateAlert(ctx context.Context, token, id string, update domain.AlertUpdate) (*domain.Alert, error) {
	var updated domain.Alert
	if err := cl.do(ctx, call{op: "alerts.update", method: http.MethodPut, path: "/admin/alerts/" + escape(id), token: token, json: update}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAlert returns an error matching domain.ErrNotFound when id does not exist.
func (cl *Client) DeleteAlert(ctx context.Context, token, id string) error {
	return cl.do(ctx, call{op: "alerts.delete", method: http.MethodDelete, path: "/admin/alerts/" + escape(id), token: token}, nil)
}

// ScanNepal asks the backend to sweep all districts for high fire risk.
func (cl *Client) ScanNepal(ctx context.Context, token string) (*domain.ScanResult, error) {
	var res domain.ScanResult
	if err := cl.do(ctx, call{op: "alerts.scan", method: http.MethodPost, path: "/admin/scan-nepal", token: token}, &res); err != nil {
		return nil, err
	}
	if res.HighRiskDistricts == nil {
		res.HighRiskDistricts = []domain.HighRiskDistrict{}
	}
	return &res, nil
}
