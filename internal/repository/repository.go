package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alimkulovaskar/task-manager-backend/internal/config"
)

var (
	ErrNotFound  = errors.New("not found in database")
	ErrInvalidID = errors.New("invalid resource identifier")
	ErrDuplicate = errors.New("duplicate key")
)

// Scope is the ownership filter applied to every task/project query.
// Admins see everything; everyone else is constrained to their own records.
type Scope struct {
	UserID string
	Admin  bool
}

func (s Scope) apply(filter bson.M) bson.M {
	if s.Admin {
		return filter
	}
	owner, err := ownerObjectID(s.UserID)
	if err != nil {
		// An unparseable session user id can never match a document.
		filter["ownerId"] = nil
		return filter
	}
	filter["ownerId"] = owner
	return filter
}

func NewConnection(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	deadline := time.After(cfg.Timeout)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
			if err != nil {
				continue
			}
			if err = client.Ping(ctx, nil); err != nil {
				continue
			}
			log.Println("Successful database connection")
			db := client.Database(cfg.DBName)
			if err := ensureIndexes(ctx, db); err != nil {
				return nil, fmt.Errorf("ensure indexes: %w", err)
			}
			return db, nil

		case <-deadline:
			return nil, fmt.Errorf("unable to connect to database")
		}
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
