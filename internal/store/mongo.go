package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
)

// MongoStore implements Store against a remote document database.
// Every write is a single upsert keyed by the record id, and reads
// translate to equality or regex queries, so the observable behavior
// matches the file adapter.
type MongoStore struct {
	client   *mongo.Client
	products *mongo.Collection
	orders   *mongo.Collection
	admin    *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	db := client.Database(dbName)
	return &MongoStore{
		client:   client,
		products: db.Collection("products"),
		orders:   db.Collection("orders"),
		admin:    db.Collection("admin"),
	}, nil
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

func (s *MongoStore) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	filter := bson.M{}
	if q.ActiveOnly {
		// Legacy records without a status count as active.
		filter["$or"] = bson.A{
			bson.M{"status": models.StatusActive},
			bson.M{"status": ""},
			bson.M{"status": bson.M{"$exists": false}},
		}
	}
	if q.Brand != "" {
		filter["brand"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(q.Brand) + "$",
			Options: "i",
		}
	}
	cur, err := s.products.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *MongoStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := s.products.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

func (s *MongoStore) PutProduct(ctx context.Context, p *models.Product) error {
	_, err := s.products.ReplaceOne(ctx, bson.M{"id": p.ID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put product %d: %w", p.ID, err)
	}
	return nil
}

func (s *MongoStore) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.products.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (s *MongoStore) CountProducts(ctx context.Context) (int, error) {
	n, err := s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return int(n), nil
}

func (s *MongoStore) CreateOrder(ctx context.Context, o *models.Order) error {
	doc := struct {
		models.Order `bson:",inline"`
		CreatedAt    primitive.DateTime `bson:"created_at"`
	}{Order: *o, CreatedAt: primitive.NewDateTimeFromTime(o.Date)}
	if _, err := s.orders.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create order %d: %w", o.ID, err)
	}
	return nil
}

func (s *MongoStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	cur, err := s.orders.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (s *MongoStore) GetAdmin(ctx context.Context) (*models.Admin, error) {
	var a models.Admin
	err := s.admin.FindOne(ctx, bson.M{}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if a.Email == "" {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MongoStore) PutAdmin(ctx context.Context, a *models.Admin) error {
	_, err := s.admin.ReplaceOne(ctx, bson.M{}, a, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put admin: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
