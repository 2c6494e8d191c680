/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"

	"github.com/wso2/identity-social-dataset-service/internal/dataset/model"
	"github.com/wso2/identity-social-dataset-service/internal/system/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentStore handles document store operations for the comments collection.
type CommentStore struct {
	collection *mongo.Collection
}

// NewCommentStore creates a new store instance.
func NewCommentStore(db *mongo.Database, collectionName string) *CommentStore {
	return &CommentStore{
		collection: db.Collection(collectionName),
	}
}

// InsertComments bulk-inserts a generation run's comments.
func (s *CommentStore) InsertComments(comments []model.Comment) error {
	ctx, cancel := context.WithTimeout(context.Background(), bulkWriteTimeout)
	defer cancel()

	documents := make([]interface{}, len(comments))
	for i, comment := range comments {
		documents[i] = comment
	}

	if _, err := s.collection.InsertMany(ctx, documents); err != nil {
		return wrapInsertError(errors.INSERT_COMMENTS, err)
	}
	return nil
}

// FindByAuthor returns every comment authored by the given user.
func (s *CommentStore) FindByAuthor(userID string) ([]model.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, errors.NewServerError(errors.FETCH_USER_COMMENTS, err)
	}

	comments := make([]model.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, errors.NewServerError(errors.FETCH_USER_COMMENTS, err)
	}
	return comments, nil
}
