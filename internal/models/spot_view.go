package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	SpotViewsDbName  = "tourbay"
	SpotViewsColName = "spot_views"

	// Views expire out of the collection after 30 days; the popularity
	// score only cares about recent interest anyway.
	spotViewRetention = 30 * 24 * time.Hour
)

// SpotView records one browsing session looking at a tourist spot. Views
// are the one engagement signal the gateway observes first-hand; they feed
// the recent-views term of the popularity score.
type SpotView struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SpotID    string             `bson:"spot_id" json:"spot_id" validate:"required"`
	CompanyID string             `bson:"company_id,omitempty" json:"company_id,omitempty"`
	UserID    *string            `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SessionID string             `bson:"session_id" json:"session_id" validate:"required"`
	IPAddress string             `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	UserAgent string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	ViewedAt  time.Time          `bson:"viewed_at" json:"viewed_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
}

// CompanyViewStats aggregates view counts across a company's spots.
type CompanyViewStats struct {
	CompanyID     string `json:"company_id"`
	TotalViews    int64  `json:"total_views"`
	UniqueViews   int64  `json:"unique_views"`
	ViewsToday    int64  `json:"views_today"`
	ViewsThisWeek int64  `json:"views_this_week"`
}

type SpotViewsRepo interface {
	TrackSpotView(ctx context.Context, view *SpotView) error
	RecentViewCounts(ctx context.Context, spotIDs []string, days int) (map[string]int64, error)
	CompanyViewStats(ctx context.Context, companyID string, days int) (*CompanyViewStats, error)
	EnsureViewIndexes(ctx context.Context) error
}

// EnsureViewIndexes creates the TTL and query indexes for the views
// collection.
func (mdb *MongodbRepo) EnsureViewIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, SpotViewsDbName, SpotViewsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().
				SetExpireAfterSeconds(0).
				SetName("expires_at_ttl"),
		},
		{
			Keys: bson.D{
				{Key: "spot_id", Value: 1},
				{Key: "session_id", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("spot_session_unique"),
		},
		{
			Keys: bson.D{
				{Key: "spot_id", Value: 1},
				{Key: "viewed_at", Value: -1},
			},
			Options: options.Index().SetName("spot_viewed_at_idx"),
		},
		{
			Keys: bson.D{
				{Key: "company_id", Value: 1},
				{Key: "viewed_at", Value: -1},
			},
			Options: options.Index().SetName("company_viewed_at_idx"),
		},
	}

	_, err = col.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("error creating indexes: %v", err)
	}

	return nil
}

// TrackSpotView records a view, deduplicating by session: the same session
// looking at the same spot within the last hour is not a new view.
func (mdb *MongodbRepo) TrackSpotView(ctx context.Context, view *SpotView) error {
	col, err := mdb.GetCollection(ctx, SpotViewsDbName, SpotViewsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oneHourAgo := time.Now().Add(-1 * time.Hour)
	var recentView SpotView
	err = col.FindOne(ctx, bson.M{
		"spot_id":    view.SpotID,
		"session_id": view.SessionID,
		"viewed_at":  bson.M{"$gte": oneHourAgo},
	}).Decode(&recentView)
	if err == nil {
		// Already counted within the last hour.
		return nil
	}

	now := time.Now()
	view.ViewedAt = now
	view.ExpiresAt = now.Add(spotViewRetention)

	if view.ID.IsZero() {
		view.ID = primitive.NewObjectID()
	}

	_, err = col.InsertOne(ctx, view)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Same session raced itself; not a new view.
			return nil
		}
		return fmt.Errorf("error inserting spot view: %v", err)
	}

	return nil
}

// RecentViewCounts returns per-spot view counts over the trailing window.
// Spots with no views are simply absent from the map.
func (mdb *MongodbRepo) RecentViewCounts(ctx context.Context, spotIDs []string, days int) (map[string]int64, error) {
	col, err := mdb.GetCollection(ctx, SpotViewsDbName, SpotViewsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"spot_id":   bson.M{"$in": spotIDs},
			"viewed_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$spot_id",
			"views": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating spot views: %v", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		SpotID string `bson:"_id"`
		Views  int64  `bson:"views"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error reading spot view counts: %v", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.SpotID] = row.Views
	}
	return counts, nil
}

// CompanyViewStats aggregates views across every spot owned by a company.
func (mdb *MongodbRepo) CompanyViewStats(ctx context.Context, companyID string, days int) (*CompanyViewStats, error) {
	col, err := mdb.GetCollection(ctx, SpotViewsDbName, SpotViewsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if days <= 0 {
		days = 30
	}

	now := time.Now()
	since := now.AddDate(0, 0, -days)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))

	stats := &CompanyViewStats{CompanyID: companyID}

	match := bson.M{"company_id": companyID, "viewed_at": bson.M{"$gte": since}}

	total, err := col.CountDocuments(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("error counting company views: %v", err)
	}
	stats.TotalViews = total

	uniquePipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$session_id"}}},
		{{Key: "$count", Value: "unique_sessions"}},
	}
	cursor, err := col.Aggregate(ctx, uniquePipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating unique views: %v", err)
	}
	defer cursor.Close(ctx)

	var uniqueResult []bson.M
	if err := cursor.All(ctx, &uniqueResult); err != nil {
		return nil, fmt.Errorf("error reading unique views: %v", err)
	}
	if len(uniqueResult) > 0 {
		if n, ok := uniqueResult[0]["unique_sessions"].(int32); ok {
			stats.UniqueViews = int64(n)
		}
	}

	today, err := col.CountDocuments(ctx, bson.M{
		"company_id": companyID,
		"viewed_at":  bson.M{"$gte": startOfDay},
	})
	if err != nil {
		return nil, fmt.Errorf("error counting today's views: %v", err)
	}
	stats.ViewsToday = today

	week, err := col.CountDocuments(ctx, bson.M{
		"company_id": companyID,
		"viewed_at":  bson.M{"$gte": startOfWeek},
	})
	if err != nil {
		return nil, fmt.Errorf("error counting this week's views: %v", err)
	}
	stats.ViewsThisWeek = week

	return stats, nil
}
