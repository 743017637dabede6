package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
)

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection("projects")}
}

func (r *ProjectRepository) List(ctx context.Context, scope Scope) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, scope.apply(bson.M{}), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	p.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, scope Scope, id string) (*models.Project, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var p models.Project
	err = r.coll.FindOne(ctx, scope.apply(bson.M{"_id": oid})).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, scope Scope, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, scope.apply(bson.M{"_id": oid}))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
