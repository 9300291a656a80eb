package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	mdb "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/logger"
)

type repository struct {
	coll *mdb.Collection
}

func NewProductRepository(collection *mdb.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) ListProducts(ctx context.Context, filter model.ProductsFilter) ([]model.Product, error) {
	const op = "mongo.repository.ListProducts"

	cur, err := r.coll.Find(ctx, BuildMongoFilter(filter), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]model.Product, 0)
	for cur.Next(ctx) {
		var ent ProductEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	const op = "mongo.repository.Count"

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *repository) CreateBatch(ctx context.Context, products []model.Product) error {
	const op = "mongo.repository.CreateBatch"

	now := time.Now()
	docs := make([]any, 0, len(products))
	for _, p := range products {
		if p.SKU == "" {
			return fmt.Errorf("%s: %w: product sku is empty", op, model.ErrValidation)
		}
		ent := EntityFromModel(p)
		ent.CreatedAt = lo.ToPtr(now)
		docs = append(docs, ent)
	}
	if len(docs) == 0 {
		return nil
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func EnsureIndexes(ctx context.Context, coll *mdb.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mdb.IndexModel{
		{Keys: bson.D{{Key: "barcodes", Value: 1}}},
		{Keys: bson.D{{Key: "name_norm", Value: 1}}},
	}, options.CreateIndexes())

	return err
}
