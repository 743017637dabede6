package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
)

const (
	defaultPageSize = 5
	maxPageSize     = 100
	// keeps (page-1)*limit well inside int64, $skip must never go negative
	maxPage = 1 << 31
)

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection("tasks")}
}

// ListOptions controls filtering, ordering and pagination of task listings.
type ListOptions struct {
	Title string
	Sort  string // "asc" or "desc" by title; anything else keeps insertion order
	Page  int64
	Limit int64
}

func (o ListOptions) normalized() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Page > maxPage {
		o.Page = maxPage
	}
	if o.Limit < 1 {
		o.Limit = defaultPageSize
	}
	if o.Limit > maxPageSize {
		o.Limit = maxPageSize
	}
	return o
}

func buildListFilter(scope Scope, title string) bson.M {
	filter := bson.M{}
	if title != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(title), "$options": "i"}
	}
	return scope.apply(filter)
}

func listPipeline(filter bson.M, o ListOptions) mongo.Pipeline {
	o = o.normalized()

	sort := bson.D{{Key: "_id", Value: 1}}
	switch o.Sort {
	case "asc":
		sort = bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}
	case "desc":
		sort = bson.D{{Key: "title", Value: -1}, {Key: "_id", Value: 1}}
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: sort}},
		{{Key: "$skip", Value: (o.Page - 1) * o.Limit}},
		{{Key: "$limit", Value: o.Limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "projects",
			"localField":   "projectId",
			"foreignField": "_id",
			"as":           "project",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$project",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (r *TaskRepository) List(ctx context.Context, scope Scope, opts ListOptions) ([]models.Task, error) {
	pipeline := listPipeline(buildListFilter(scope, opts.Title), opts)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, scope Scope, id string) (*models.Task, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var t models.Task
	err = r.coll.FindOne(ctx, scope.apply(bson.M{"_id": oid})).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *models.Task) error {
	t.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a partial mutation. A task invisible to the scope is
// reported as ErrNotFound, which is how non-owners are denied.
func (r *TaskRepository) Update(ctx context.Context, scope Scope, id string, set, unset bson.M) (*models.Task, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t models.Task
	err = r.coll.FindOneAndUpdate(ctx, scope.apply(bson.M{"_id": oid}), update, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, scope Scope, id string) error {
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

// ClearProject detaches every task referencing the given project.
// Used when a project is deleted so tasks keep working without it.
func (r *TaskRepository) ClearProject(ctx context.Context, scope Scope, projectID primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		scope.apply(bson.M{"projectId": projectID}),
		bson.M{"$unset": bson.M{"projectId": ""}},
	)
	return err
}
