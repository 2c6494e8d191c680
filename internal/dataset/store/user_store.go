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

// UserStore handles document store operations for the users collection.
type UserStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a new store instance.
func NewUserStore(db *mongo.Database, collectionName string) *UserStore {
	return &UserStore{
		collection: db.Collection(collectionName),
	}
}

// InsertUsers bulk-inserts a generation run's users.
func (s *UserStore) InsertUsers(users []model.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), bulkWriteTimeout)
	defer cancel()

	documents := make([]interface{}, len(users))
	for i, user := range users {
		documents[i] = user
	}

	if _, err := s.collection.InsertMany(ctx, documents); err != nil {
		return wrapInsertError(errors.INSERT_USERS, err)
	}
	return nil
}

// AllUsers returns every user document in the collection.
func (s *UserStore) AllUsers() ([]model.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), bulkWriteTimeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.NewServerError(errors.FETCH_USERS, err)
	}

	users := make([]model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.NewServerError(errors.FETCH_USERS, err)
	}
	return users, nil
}
