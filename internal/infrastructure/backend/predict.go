package backend

import (
	"context"
	"net/http"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// PredictManual runs the backend fire model on in. The backend answers 200
// with an "error" field when its model is not loaded; that is surfaced as a
// 503 ServerError.
func (cl *Client) PredictManual(ctx context.Context, in domain.PredictionInput) (*domain.Prediction, error) {
	var pred domain.Prediction
	if err := cl.do(ctx, call{op: "predict.manual", method: http.MethodPost, path: "/predict-manual", json: in}, &pred); err != nil {
		return nil, err
	}
	if pred.Error != "" {
		return nil, &domain.ServerError{Op: "predict.manual", Status: http.StatusServiceUnavailable, Message: pred.Error}
	}
	return &pred, nil
}
