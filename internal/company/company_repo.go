package company

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-bms/internal/populate"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Company) (string, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	// FindPopulatedByID hydrates every related field per the company
	// descriptor set in one aggregation round trip.
	FindPopulatedByID(ctx context.Context, id string) (bson.M, error)
	UpdateFields(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	PushRelation(ctx context.Context, id, field string, ref primitive.ObjectID) error
	PullRelation(ctx context.Context, id, field string, ref primitive.ObjectID) error
	SetAccountant(ctx context.Context, id string, accountantID *primitive.ObjectID) error
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{coll: db.Collection("companies")}
}

func (r *repository) Create(ctx context.Context, c *Company) (string, error) {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Employees == nil {
		c.Employees = []primitive.ObjectID{}
	}
	if c.Products == nil {
		c.Products = []primitive.ObjectID{}
	}
	if c.Clients == nil {
		c.Clients = []primitive.ObjectID{}
	}
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

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var c Company
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

	pipeline := populate.Pipeline(bson.M{"_id": oid}, populate.CompanyRelations)

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

func (r *repository) UpdateFields(ctx context.Context, id string, set bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	set["updatedAt"] = time.Now()
	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
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

func (r *repository) PushRelation(ctx context.Context, id, field string, ref primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{field: ref},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	return err
}

func (r *repository) PullRelation(ctx context.Context, id, field string, ref primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{
		"$pull": bson.M{field: ref},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	return err
}

func (r *repository) SetAccountant(ctx context.Context, id string, accountantID *primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	update := bson.M{"$set": bson.M{"updatedAt": time.Now()}}
	if accountantID == nil {
		update["$unset"] = bson.M{"accountant": ""}
	} else {
		update["$set"].(bson.M)["accountant"] = *accountantID
	}

	_, err = r.coll.UpdateByID(ctx, oid, update)
	return err
}
