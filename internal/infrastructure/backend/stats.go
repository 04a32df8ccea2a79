package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// bucketKeys maps each statistic to the field that names its bucket.
var bucketKeys = map[ports.StatsDimension]string{
	ports.StatsYearly:     "year",
	ports.StatsMonthly:    "month",
	ports.StatsConfidence: "confidence",
	ports.StatsElevation:  "elevation_bin",
}

// FireCounts returns one historical statistic from /fires/{dimension}.
func (cl *Client) FireCounts(ctx context.Context, dimension ports.StatsDimension) ([]domain.FireCount, error) {
	key, ok := bucketKeys[dimension]
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown statistic %q", dimension))
	}
	op := "fires." + string(dimension)

	var raw json.RawMessage
	if err := cl.do(ctx, call{op: op, method: http.MethodGet, path: "/fires/" + string(dimension)}, &raw); err != nil {
		return nil, err
	}

	// A missing column comes back as {"error": "..."} with status 200.
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		if msg := errorMessage(raw); msg != "" {
			return nil, &domain.ServerError{Op: op, Status: http.StatusUnprocessableEntity, Message: msg}
		}
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	counts := make([]domain.FireCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.FireCount{
			Bucket: bucketLabel(row[key]),
			Count:  int(number(row["count"])),
		})
	}
	return counts, nil
}

func bucketLabel(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func number(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}
