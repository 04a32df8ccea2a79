package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

const sessionEventsCollection = "session_events"

// SessionAuditRepository implements ports.SessionAuditRepository.
type SessionAuditRepository struct {
	col *mongo.Collection
}

func NewSessionAuditRepository(db *mongo.Database) *SessionAuditRepository {
	return &SessionAuditRepository{col: db.Collection(sessionEventsCollection)}
}

// EnsureIndexes creates the per-client timeline index.
func (r *SessionAuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("client_timeline"),
	})
	if err != nil {
		return fmt.Errorf("create session_events index: %w", err)
	}
	return nil
}

func (r *SessionAuditRepository) Insert(ctx context.Context, event *domain.SessionEvent) error {
	e := *event
	e.Timestamp = e.Timestamp.UTC()
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert session event: %w", err)
	}
	return nil
}

// ListByClient returns the newest events for clientID first.
func (r *SessionAuditRepository) ListByClient(ctx context.Context, clientID string, limit int64) ([]domain.SessionEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find session events: %w", err)
	}
	defer cur.Close(ctx)

	events := []domain.SessionEvent{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode session events: %w", err)
	}
	return events, nil
}
