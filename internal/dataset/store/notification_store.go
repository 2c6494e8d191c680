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

// NotificationStore handles document store operations for the notifications
// collection.
type NotificationStore struct {
	collection *mongo.Collection
}

// NewNotificationStore creates a new store instance.
func NewNotificationStore(db *mongo.Database, collectionName string) *NotificationStore {
	return &NotificationStore{
		collection: db.Collection(collectionName),
	}
}

// InsertNotifications bulk-inserts a generation run's notifications.
func (s *NotificationStore) InsertNotifications(notifications []model.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), bulkWriteTimeout)
	defer cancel()

	documents := make([]interface{}, len(notifications))
	for i, notification := range notifications {
		documents[i] = notification
	}

	if _, err := s.collection.InsertMany(ctx, documents); err != nil {
		return wrapInsertError(errors.INSERT_NOTIFICATIONS, err)
	}
	return nil
}

// FindByRecipient returns every notification addressed to the given user.
func (s *NotificationStore) FindByRecipient(userID string) ([]model.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, errors.NewServerError(errors.FETCH_USER_NOTIFICATIONS, err)
	}

	notifications := make([]model.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, errors.NewServerError(errors.FETCH_USER_NOTIFICATIONS, err)
	}
	return notifications, nil
}
