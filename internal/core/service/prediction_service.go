package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

const predictView = "predict"

// PredictionView is the predict page result: the backend verdict plus the
// VPD computed locally from the same inputs.
type PredictionView struct {
	Prediction *domain.Prediction `json:"prediction"`
	VPD        float64            `json:"vpd"`
}

// PredictionService runs manual fire predictions.
type PredictionService struct {
	gateway ports.PredictionGateway
	seq     *Sequencer
	log     zerolog.Logger
}

func NewPredictionService(gateway ports.PredictionGateway, seq *Sequencer, log zerolog.Logger) *PredictionService {
	return &PredictionService{gateway: gateway, seq: seq, log: log}
}

// Predict submits in to the model. A newer call from the same client cancels
// this one and its result is discarded.
func (s *PredictionService) Predict(ctx context.Context, clientID string, in domain.PredictionInput) (*PredictionView, error) {
	if err := validatePrediction(in); err != nil {
		return nil, err
	}

	reqCtx, ticket := s.seq.Begin(ctx, clientID+":"+predictView)
	defer ticket.Done()

	pred, err := s.gateway.PredictManual(reqCtx, in)

	if !ticket.Latest() {
		metrics.StaleResponsesTotal.WithLabelValues(predictView).Inc()
		s.log.Debug().Str("client_id", clientID).Uint64("generation", ticket.Generation()).Msg("discarding stale prediction")
		return nil, domain.ErrStaleResponse
	}
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	return &PredictionView{
		Prediction: pred,
		VPD:        domain.Round3(domain.VaporPressureDeficit(in.Temperature, in.Humidity)),
	}, nil
}

func validatePrediction(in domain.PredictionInput) error {
	var fields []string
	if in.Latitude < -90 || in.Latitude > 90 {
		fields = append(fields, "latitude out of range")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		fields = append(fields, "longitude out of range")
	}
	if in.Humidity < 0 || in.Humidity > 100 {
		fields = append(fields, "humidity must be between 0 and 100")
	}
	if in.Temperature <= -237.3 {
		fields = append(fields, "temperature out of range")
	}
	if in.WindSpeed < 0 {
		fields = append(fields, "wind_speed must not be negative")
	}
	if in.Precipitation < 0 {
		fields = append(fields, "precipitation must not be negative")
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}
