package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contactly/clients-api/internal/core/domain"
	"github.com/contactly/clients-api/internal/core/ports"
)

const collectionClients = "clients"

type ClientRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{db: db, col: db.Collection(collectionClients)}
}

// Create inserts a new client document under a freshly assigned sequential id.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionClients)
	if err != nil {
		return nil, err
	}

	doc := *c
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Client
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByEmail returns the first client with the given email. Client emails
// carry no unique index; the create flow uses this as a precondition check only.
func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Client
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all client documents in natural order.
func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	clients := []*domain.Client{}
	for cur.Next(ctx) {
		var c domain.Client
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, cur.Err()
}

// ListByBirthday selects clients whose birthday day and month each fall
// inside the window's day and month bounds, compared independently and with
// the year ignored. This is the Mongo rendering of the original SQL
// extract('day'/'month') comparison and shares its month-boundary artifact.
func (r *ClientRepository) ListByBirthday(ctx context.Context, w ports.BirthdayWindow) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$expr": bson.M{"$and": bson.A{
		bson.M{"$gte": bson.A{bson.M{"$dayOfMonth": "$birthday"}, w.Start.Day()}},
		bson.M{"$gte": bson.A{bson.M{"$month": "$birthday"}, int(w.Start.Month())}},
		bson.M{"$lte": bson.A{bson.M{"$dayOfMonth": "$birthday"}, w.End.Day()}},
		bson.M{"$lte": bson.A{bson.M{"$month": "$birthday"}, int(w.End.Month())}},
	}}}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	clients := []*domain.Client{}
	for cur.Next(ctx) {
		var c domain.Client
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, cur.Err()
}

// Update replaces the whole document matched on _id. No version token: two
// concurrent updates resolve last-writer-wins.
func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the query indexes on the clients collection. Email is
// deliberately NOT unique here, unlike users.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "birthday", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
