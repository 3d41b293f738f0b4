package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOwnershipFilters(t *testing.T) {
	assert.Equal(t, bson.M{"$or": []bson.M{
		{"assignee_id": "u1"},
		{"assignees": "u1"},
	}}, TaskFilter("u1"))
	assert.Equal(t, bson.M{"team_members": "u1"}, ProjectFilter("u1"))
	assert.Equal(t, bson.M{"user_id": "u1"}, TimeLogFilter("u1"))
	assert.Equal(t, bson.M{"author_id": "u1"}, CommentFilter("u1"))
	assert.Equal(t, bson.M{"uploaded_by": "u1"}, DocumentFilter("u1"))
}
