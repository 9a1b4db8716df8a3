package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
)

// MongoBackend stores each collection as a MongoDB collection of the same name.
type MongoBackend struct {
	client *mongo.Client
	db     *mongo.Database
}

type MongoOptions struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// NewMongoBackend connects and pings the server before returning.
func NewMongoBackend(ctx context.Context, opts MongoOptions) (*MongoBackend, error) {
	clientOpts := options.Client().ApplyURI(opts.URI)
	if opts.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(opts.ConnectTimeout)
		clientOpts.SetServerSelectionTimeout(opts.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoBackend{client: client, db: client.Database(opts.Database)}, nil
}

func (m *MongoBackend) Name() string { return "mongodb" }

func (m *MongoBackend) Insert(ctx context.Context, collection string, doc models.Document) (string, error) {
	id := primitive.NewObjectID()
	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	stored[models.InternalIDField] = id

	if _, err := m.db.Collection(collection).InsertOne(ctx, stored); err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (m *MongoBackend) Find(ctx context.Context, collection string, spec filter.Spec, limit int) ([]models.Document, error) {
	query, err := mongoFilter(spec)
	if err != nil {
		return nil, err
	}

	// ObjectIDs are time-ordered, so ascending _id follows insertion order.
	opts := options.Find().
		SetSort(bson.D{{Key: models.InternalIDField, Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := m.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, fromBSON(r))
	}
	return docs, nil
}

func (m *MongoBackend) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}

// Migrate creates the given non-unique single-field indexes. Collections are created
// implicitly by MongoDB on first insert.
func (m *MongoBackend) Migrate(ctx context.Context, indexes map[string][]string) error {
	for collection, fields := range indexes {
		for _, field := range fields {
			model := mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetName("idx_" + collection + "_" + field),
			}
			if _, err := m.db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
				return fmt.Errorf("create index %s.%s: %w", collection, field, err)
			}
		}
	}
	return nil
}

func (m *MongoBackend) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// mongoFilter translates a filter.Spec into a MongoDB query document.
func mongoFilter(spec filter.Spec) (bson.M, error) {
	t := &mongoTranslator{}
	if err := filter.Visit(spec, t); err != nil {
		return nil, err
	}
	return t.out, nil
}

type mongoTranslator struct {
	out bson.M
}

func (t *mongoTranslator) Equals(e filter.Equals) error {
	t.out = bson.M{e.Field: e.Value}
	return nil
}

func (t *mongoTranslator) SubstringAny(s filter.SubstringAny) error {
	if len(s.Fields) == 0 {
		// no field can contain the needle
		t.out = bson.M{models.InternalIDField: bson.M{"$in": bson.A{}}}
		return nil
	}
	pattern := regexp.QuoteMeta(s.Needle)
	alternatives := make(bson.A, 0, len(s.Fields))
	for _, field := range s.Fields {
		alternatives = append(alternatives, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
	}
	t.out = bson.M{"$or": alternatives}
	return nil
}

func (t *mongoTranslator) And(a filter.And) error {
	clauses := make(bson.A, 0, len(a.Clauses))
	for _, clause := range a.Clauses {
		q, err := mongoFilter(clause)
		if err != nil {
			return err
		}
		if len(q) == 0 {
			continue
		}
		clauses = append(clauses, q)
	}
	switch len(clauses) {
	case 0:
		t.out = bson.M{}
	case 1:
		t.out = clauses[0].(bson.M)
	default:
		t.out = bson.M{"$and": clauses}
	}
	return nil
}

// fromBSON converts decoded BSON containers into plain documents, slices and maps so
// that responses encode as ordinary JSON.
func fromBSON(m bson.M) models.Document {
	doc := make(models.Document, len(m))
	for k, v := range m {
		doc[k] = plainValue(v)
	}
	return doc
}

func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.M:
		return map[string]interface{}(fromBSON(val))
	case bson.D:
		m := make(bson.M, len(val))
		for _, e := range val {
			m[e.Key] = e.Value
		}
		return map[string]interface{}(fromBSON(m))
	case bson.A:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	case primitive.DateTime:
		return val.Time().UTC()
	default:
		return v
	}
}
