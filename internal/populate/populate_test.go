package populate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageName(stage bson.D) string {
	if len(stage) == 0 {
		return ""
	}
	return stage[0].Key
}

func lookupValue(t *testing.T, stage bson.D) bson.D {
	t.Helper()
	require.Equal(t, "$lookup", stageName(stage))
	v, ok := stage[0].Value.(bson.D)
	require.True(t, ok)
	return v
}

func lookupField(t *testing.T, lookup bson.D, key string) interface{} {
	t.Helper()
	for _, e := range lookup {
		if e.Key == key {
			return e.Value
		}
	}
	t.Fatalf("lookup has no %q field", key)
	return nil
}

func TestPipeline_MatchComesFirst(t *testing.T) {
	p := Pipeline(bson.M{"_id": "x"}, nil)

	require.Len(t, p, 1)
	assert.Equal(t, "$match", stageName(p[0]))
}

func TestPipeline_SingleRelationUnwindsToOneDoc(t *testing.T) {
	rels := []Relation{
		{Field: "owner", From: "users", LocalField: "owner", Project: []string{"firstName"}, Single: true},
	}

	p := Pipeline(bson.M{}, rels)
	require.Len(t, p, 3)

	lookup := lookupValue(t, p[1])
	assert.Equal(t, "users", lookupField(t, lookup, "from"))
	assert.Equal(t, "owner", lookupField(t, lookup, "localField"))
	assert.Equal(t, "_id", lookupField(t, lookup, "foreignField"))
	assert.Equal(t, "owner", lookupField(t, lookup, "as"))

	// Single relations collapse the lookup array with $set/$first.
	assert.Equal(t, "$set", stageName(p[2]))
}

func TestPipeline_ProjectionAndLimitLiveInSubPipeline(t *testing.T) {
	rels := []Relation{
		{Field: "employees", From: "users", LocalField: "employees", Project: []string{"firstName", "lastName"}, Limit: 4},
	}

	p := Pipeline(bson.M{}, rels)
	require.Len(t, p, 2)

	lookup := lookupValue(t, p[1])
	sub, ok := lookupField(t, lookup, "pipeline").(mongo.Pipeline)
	require.True(t, ok)
	require.Len(t, sub, 2)

	assert.Equal(t, "$project", stageName(sub[0]))
	assert.Equal(t, "$limit", stageName(sub[1]))
	assert.Equal(t, int64(4), sub[1][0].Value)
}

func TestPipeline_NestedPopulate(t *testing.T) {
	p := Pipeline(bson.M{}, CompanyRelations)

	// One $match, one $lookup per relation, plus a $set per Single
	// relation (owner, accountant).
	require.Len(t, p, 1+len(CompanyRelations)+2)
	assert.Equal(t, "$match", stageName(p[0]))
}
