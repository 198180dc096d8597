package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

const invigilationCollection = "invigilations"

// ScanRepository persists invigilation records in MongoDB.
type ScanRepository struct {
	coll *mongo.Collection
}

func NewScanRepository(db *mongo.Database) *ScanRepository {
	return &ScanRepository{coll: db.Collection(invigilationCollection)}
}

func (r *ScanRepository) Insert(ctx context.Context, rec *domain.Invigilation) error {
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert invigilation: %w", err)
	}
	return nil
}

func (r *ScanRepository) ListByInvigilator(ctx context.Context, invigilatorID string, limit int) ([]*domain.Invigilation, error) {
	return r.list(ctx, bson.M{"invigilator_id": invigilatorID}, limit)
}

func (r *ScanRepository) List(ctx context.Context, limit int) ([]*domain.Invigilation, error) {
	return r.list(ctx, bson.M{}, limit)
}

func (r *ScanRepository) list(ctx context.Context, filter bson.M, limit int) ([]*domain.Invigilation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scan_time", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list invigilations: %w", err)
	}
	defer cur.Close(ctx)

	var records []*domain.Invigilation
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode invigilations: %w", err)
	}
	return records, nil
}
