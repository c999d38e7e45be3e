package accountant

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

//go:generate mockgen -source=accountant_repo.go -destination=mock/accountant_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Accountant) (string, error)
	FindByID(ctx context.Context, id string) (*Accountant, error)
	FindByCompany(ctx context.Context, companyID string) (*Accountant, error)
	FindPopulatedByID(ctx context.Context, id string) (bson.M, error)
	UpdateFields(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{coll: db.Collection("accountants")}
}

func (r *repository) Create(ctx context.Context, a *Accountant) (string, error) {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Accountant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var a Accountant
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByCompany(ctx context.Context, companyID string) (*Accountant, error) {
	companyOID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var a Accountant
	if err := r.coll.FindOne(ctx, bson.M{"company": companyOID}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindPopulatedByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	pipeline := populate.Pipeline(bson.M{"_id": oid}, populate.AccountantRelations)

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
