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

// PostStore handles document store operations for the posts collection.
type PostStore struct {
	collection *mongo.Collection
}

// NewPostStore creates a new store instance.
func NewPostStore(db *mongo.Database, collectionName string) *PostStore {
	return &PostStore{
		collection: db.Collection(collectionName),
	}
}

// InsertPosts bulk-inserts a generation run's posts.
func (s *PostStore) InsertPosts(posts []model.Post) error {
	ctx, cancel := context.WithTimeout(context.Background(), bulkWriteTimeout)
	defer cancel()

	documents := make([]interface{}, len(posts))
	for i, post := range posts {
		documents[i] = post
	}

	if _, err := s.collection.InsertMany(ctx, documents); err != nil {
		return wrapInsertError(errors.INSERT_POSTS, err)
	}
	return nil
}

// FindByAuthor returns every post authored by the given user, by equality
// match on the foreign-key field. An author with no posts yields an empty
// slice, not an error.
func (s *PostStore) FindByAuthor(userID string) ([]model.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, errors.NewServerError(errors.FETCH_USER_POSTS, err)
	}

	posts := make([]model.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.NewServerError(errors.FETCH_USER_POSTS, err)
	}
	return posts, nil
}
