package database

import (
	"context"
	"fmt"
	"time"

	repository "contributorkpi/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityIndexes lists, per collection, the indexes backing the per-user activity queries.
func ActivityIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		// Used by: LoadActivity task query ($or on single and multiple assignees)
		repository.TasksCollection: {
			{
				Keys:    bson.D{{Key: "assignee_id", Value: 1}},
				Options: options.Index().SetName("idx_assignee_id"),
			},
			{
				Keys:    bson.D{{Key: "assignees", Value: 1}},
				Options: options.Index().SetName("idx_assignees"),
			},
		},
		// Multikey index on the member list
		repository.ProjectsCollection: {
			{
				Keys:    bson.D{{Key: "team_members", Value: 1}},
				Options: options.Index().SetName("idx_team_members"),
			},
		},
		repository.TimeLogsCollection: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "project_id", Value: 1}},
				Options: options.Index().SetName("idx_user_id_project_id"),
			},
		},
		repository.CommentsCollection: {
			{
				Keys:    bson.D{{Key: "author_id", Value: 1}},
				Options: options.Index().SetName("idx_author_id"),
			},
		},
		repository.DocumentsCollection: {
			{
				Keys:    bson.D{{Key: "uploaded_by", Value: 1}},
				Options: options.Index().SetName("idx_uploaded_by"),
			},
		},
	}
}

func CreateActivityIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for name, indexes := range ActivityIndexes() {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	return nil
}
