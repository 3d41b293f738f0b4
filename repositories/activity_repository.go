package repository

import (
	"context"
	"errors"
	"fmt"

	"contributorkpi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

var ErrUserNotFound = errors.New("user not found")

const (
	UsersCollection     = "users"
	TasksCollection     = "tasks"
	ProjectsCollection  = "projects"
	TimeLogsCollection  = "time_logs"
	CommentsCollection  = "comments"
	DocumentsCollection = "documents"
)

type ActivityRepository interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	// LoadActivity returns everything the KPI engine may read for one user.
	LoadActivity(ctx context.Context, userID string) (*models.ActivityBundle, error)
}

type activityRepository struct {
	users     *mongo.Collection
	tasks     *mongo.Collection
	projects  *mongo.Collection
	timeLogs  *mongo.Collection
	comments  *mongo.Collection
	documents *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) ActivityRepository {
	return &activityRepository{
		users:     db.Collection(UsersCollection),
		tasks:     db.Collection(TasksCollection),
		projects:  db.Collection(ProjectsCollection),
		timeLogs:  db.Collection(TimeLogsCollection),
		comments:  db.Collection(CommentsCollection),
		documents: db.Collection(DocumentsCollection),
	}
}

func (r *activityRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Ownership filters mirror the ones the calculator applies in memory.
func TaskFilter(userID string) bson.M {
	return bson.M{"$or": []bson.M{
		{"assignee_id": userID},
		{"assignees": userID},
	}}
}

func ProjectFilter(userID string) bson.M {
	return bson.M{"team_members": userID}
}

func TimeLogFilter(userID string) bson.M {
	return bson.M{"user_id": userID}
}

func CommentFilter(userID string) bson.M {
	return bson.M{"author_id": userID}
}

func DocumentFilter(userID string) bson.M {
	return bson.M{"uploaded_by": userID}
}

func (r *activityRepository) LoadActivity(ctx context.Context, userID string) (*models.ActivityBundle, error) {
	var bundle models.ActivityBundle

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return findAll(gctx, r.tasks, TaskFilter(userID), &bundle.Tasks)
	})
	g.Go(func() error {
		return findAll(gctx, r.projects, ProjectFilter(userID), &bundle.Projects)
	})
	g.Go(func() error {
		return findAll(gctx, r.timeLogs, TimeLogFilter(userID), &bundle.TimeLogs)
	})
	g.Go(func() error {
		return findAll(gctx, r.comments, CommentFilter(userID), &bundle.Comments)
	})
	g.Go(func() error {
		return findAll(gctx, r.documents, DocumentFilter(userID), &bundle.Documents)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &bundle, nil
}

func findAll[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, out *[]T) error {
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	var items []T
	if err = cursor.All(ctx, &items); err != nil {
		return fmt.Errorf("failed to decode %s: %w", collection.Name(), err)
	}

	*out = items
	return nil
}
