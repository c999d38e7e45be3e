package populate

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Relation describes one related field to hydrate at read time: where
// the ids live, which collection they resolve against, which sub-fields
// survive and how many documents to pull. Repositories interpret these
// generically; adding a relation is a descriptor entry, not a code path.
type Relation struct {
	Field      string     // output field on the parent document
	From       string     // source collection
	LocalField string     // parent field holding the reference(s)
	Project    []string   // allow-listed sub-fields (_id always kept)
	Limit      int64      // 0 = no limit
	Single     bool       // unwind the result to one document
	Populate   []Relation // second-level hydration
}

func projectStage(fields []string) bson.D {
	proj := bson.D{}
	for _, f := range fields {
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	return bson.D{{Key: "$project", Value: proj}}
}

func lookupStage(rel Relation) bson.D {
	pipeline := mongo.Pipeline{}

	if len(rel.Populate) > 0 {
		for _, nested := range rel.Populate {
			pipeline = append(pipeline, lookupStage(nested))
			if nested.Single {
				pipeline = append(pipeline, firstStage(nested.Field))
			}
		}
	}

	if len(rel.Project) > 0 {
		pipeline = append(pipeline, projectStage(rel.Project))
	}
	if rel.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: rel.Limit}})
	}

	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: rel.From},
		{Key: "localField", Value: rel.LocalField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: rel.Field},
		{Key: "pipeline", Value: pipeline},
	}}}
}

func firstStage(field string) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{
		{Key: field, Value: bson.D{{Key: "$first", Value: "$" + field}}},
	}}}
}

// Pipeline compiles match plus a relation set into one aggregation so a
// populated read is a single round trip with no over-fetching.
func Pipeline(match bson.M, rels []Relation) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
	}

	for _, rel := range rels {
		pipeline = append(pipeline, lookupStage(rel))
		if rel.Single {
			pipeline = append(pipeline, firstStage(rel.Field))
		}
	}

	return pipeline
}
