package client

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-bms/internal/populate"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Client) (string, error)
	FindByID(ctx context.Context, id string) (*Client, error)
	FindPopulatedByID(ctx context.Context, id string) (bson.M, error)
	FindPageByCompany(ctx context.Context, companyID, search string, page, limit int) ([]Client, int64, error)
	UpdateFields(ctx context.Context, id string, set bson.M) error
	PushPurchase(ctx context.Context, id string, purchaseID primitive.ObjectID) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{coll: db.Collection("clients")}
}

func (r *repository) Create(ctx context.Context, c *Client) (string, error) {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Purchases == nil {
		c.Purchases = []primitive.ObjectID{}
	}

	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return "", err
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var c Client
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindPopulatedByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	pipeline := populate.Pipeline(bson.M{"_id": oid}, populate.ClientRelations)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, err
		}
		return nil, mongo.ErrNoDocuments
	}

	var doc bson.M
	if err := cur.Decode(&doc); err != nil {
		return nil, err
	}
	delete(doc, "createdAt")
	delete(doc, "updatedAt")
	return doc, nil
}

func (r *repository) FindPageByCompany(ctx context.Context, companyID, search string, page, limit int) ([]Client, int64, error) {
	companyOID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, 0, mongo.ErrNoDocuments
	}

	filter := bson.M{"company": companyOID}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"createdAt": 0, "updatedAt": 0})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	clients := []Client{}
	for cur.Next(ctx) {
		var c Client
		if err := cur.Decode(&c); err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}
	return clients, total, cur.Err()
}

func (r *repository) UpdateFields(ctx context.Context, id string, set bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	set["updatedAt"] = time.Now()
	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	return err
}

func (r *repository) PushPurchase(ctx context.Context, id string, purchaseID primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"purchases": purchaseID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	err = r.coll.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
