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

package locks

import (
	"context"
	"time"

	"github.com/wso2/identity-social-dataset-service/internal/system/constants"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const lockOpTimeout = 2 * time.Second

type MongoLock struct {
	collection *mongo.Collection
}

func NewMongoLock(db *mongo.Database) DistributedLock {
	return &MongoLock{
		collection: db.Collection(constants.LocksCollection),
	}
}

// Acquire inserts a lock document keyed by the lock name. A duplicate key
// means the lock is held; an expired holder is evicted and the insert retried
// once so a crashed run cannot block the stage forever.
func (l *MongoLock) Acquire(key string, ttl time.Duration) (bool, error) {
	acquired, err := l.tryInsert(key, ttl)
	if err != nil || acquired {
		return acquired, err
	}

	evicted, err := l.evictExpired(key)
	if err != nil || !evicted {
		return false, err
	}
	return l.tryInsert(key, ttl)
}

func (l *MongoLock) Release(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockOpTimeout)
	defer cancel()

	_, err := l.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (l *MongoLock) tryInsert(key string, ttl time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockOpTimeout)
	defer cancel()

	now := time.Now().UTC()
	lock := bson.M{
		"_id":        key,
		"created_at": now,
		"expires_at": now.Add(ttl),
	}

	_, err := l.collection.InsertOne(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *MongoLock) evictExpired(key string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockOpTimeout)
	defer cancel()

	result, err := l.collection.DeleteOne(ctx, bson.M{
		"_id":        key,
		"expires_at": bson.M{"$lt": time.Now().UTC()},
	})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
