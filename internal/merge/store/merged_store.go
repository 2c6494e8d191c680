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
	"time"

	"github.com/wso2/identity-social-dataset-service/internal/merge/model"
	"github.com/wso2/identity-social-dataset-service/internal/system/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 30 * time.Second

// MergedStore handles document store operations for the merged collection.
type MergedStore struct {
	collection *mongo.Collection
}

// NewMergedStore creates a new store instance.
func NewMergedStore(db *mongo.Database, collectionName string) *MergedStore {
	return &MergedStore{
		collection: db.Collection(collectionName),
	}
}

// EnsureIndexes creates the unique index on user_id. The index is the sole
// guard against duplicate consolidated documents.
func (s *MergedStore) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.NewServerError(errors.ENSURE_MERGED_INDEX, err)
	}
	return nil
}

// Upsert replaces the consolidated document for the user wholesale, or
// inserts it when absent. Field-level patching is deliberately not used; the
// document is rebuilt from the sources on every merge pass.
func (s *MergedStore) Upsert(document model.MergedUserDocument) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	filter := bson.M{"user_id": document.UserID}
	opts := options.Replace().SetUpsert(true)

	if _, err := s.collection.ReplaceOne(ctx, filter, document, opts); err != nil {
		return errors.NewServerError(errors.UPSERT_MERGED_DOCUMENT, err)
	}
	return nil
}

// FindByUserID retrieves a consolidated document by user_id. A missing
// document is not an error.
func (s *MergedStore) FindByUserID(userID string) (*model.MergedUserDocument, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var document model.MergedUserDocument
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.NewServerError(errors.FETCH_USERS, err)
	}
	return &document, nil
}

// Count returns the number of consolidated documents.
func (s *MergedStore) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.collection.CountDocuments(ctx, bson.M{})
}
