package mirror

import (
	"context"
	"log"
	"time"

	"github.com/atharvabaodhankar/socio3-ledger/internal/events"
	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostDoc is the denormalized post projection served to search and feed
// consumers. It is eventually consistent with the ledger and may be rebuilt
// from scratch by replaying events; the ledger never reads it back.
type PostDoc struct {
	PostID      uint      `json:"post_id" bson:"_id"`
	Author      string    `json:"author" bson:"author"`
	IPFSHash    string    `json:"ipfs_hash" bson:"ipfs_hash"`
	LikesCount  int64     `json:"likes_count" bson:"likes_count"`
	ReportCount int64     `json:"report_count" bson:"report_count"`
	TipsAmount  int64     `json:"tips_amount" bson:"tips_amount"`
	Removed     bool      `json:"removed" bson:"removed"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// MongoMirror maintains the post projection in MongoDB
type MongoMirror struct {
	collection *mongo.Collection
}

// NewMongoMirror creates a mirror over the given database
func NewMongoMirror(db *mongo.Database) *MongoMirror {
	return &MongoMirror{collection: db.Collection("posts")}
}

// HandleEvent applies one ledger event to the projection. Errors are logged
// and swallowed: a missed update leaves the mirror stale, never the ledger.
func (m *MongoMirror) HandleEvent(e events.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var err error
	switch e.Type {
	case events.PostCreated:
		doc := PostDoc{
			PostID:    e.PostID,
			Author:    e.Actor,
			IPFSHash:  e.IPFSHash,
			CreatedAt: e.Timestamp,
		}
		_, err = m.collection.InsertOne(ctx, doc)
	case events.Liked:
		err = m.adjustCounts(ctx, e.PostID, bson.M{"likes_count": 1})
	case events.Unliked:
		err = m.adjustCounts(ctx, e.PostID, bson.M{"likes_count": -1})
	case events.PostReported:
		err = m.adjustCounts(ctx, e.PostID, bson.M{"report_count": 1})
	case events.Tipped:
		_, err = m.collection.UpdateOne(ctx, bson.M{"_id": e.PostID},
			bson.M{"$inc": bson.M{"tips_amount": e.Amount}})
	}

	if err != nil {
		log.Printf("mirror: failed to apply %s for post %d: %v", e.Type, e.PostID, err)
	}
}

// adjustCounts applies a counter delta and reclassifies the removed flag from
// the updated counts. Like/report events against ids the mirror has never
// seen are dropped; orphan social activity has nothing to project onto.
func (m *MongoMirror) adjustCounts(ctx context.Context, postID uint, inc bson.M) error {
	res, err := m.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": inc})
	if err != nil || res.MatchedCount == 0 {
		return err
	}

	var doc PostDoc
	if err := m.collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&doc); err != nil {
		return err
	}

	removed, _ := ledger.ShouldRemove(doc.ReportCount, doc.LikesCount)
	if removed != doc.Removed {
		_, err = m.collection.UpdateOne(ctx, bson.M{"_id": postID},
			bson.M{"$set": bson.M{"removed": removed}})
	}
	return err
}

// SearchPosts retrieves projected posts, newest first, optionally filtered by
// author. Removed posts are excluded unless includeRemoved is set.
func (m *MongoMirror) SearchPosts(ctx context.Context, author string, includeRemoved bool, skip, limit int64) ([]PostDoc, error) {
	filter := bson.M{}
	if author != "" {
		filter["author"] = author
	}
	if !includeRemoved {
		filter["removed"] = bson.M{"$ne": true}
	}

	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []PostDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
