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

package client

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// DBClientInterface defines the interface for document store access.
type DBClientInterface interface {
	Database() *mongo.Database
	Collection(name string) *mongo.Collection
	Close() error
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewDBClient connects to the document store and verifies the connection.
func NewDBClient(uri, databaseName string) (DBClientInterface, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := mongoClient.Ping(ctx, nil); err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	return &DBClient{
		client:   mongoClient,
		database: mongoClient.Database(databaseName),
	}, nil
}

// Database returns the configured database handle.
func (client *DBClient) Database() *mongo.Database {

	return client.database
}

// Collection returns a collection handle on the configured database.
func (client *DBClient) Collection(name string) *mongo.Collection {

	return client.database.Collection(name)
}

// Close disconnects the underlying client.
func (client *DBClient) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	return client.client.Disconnect(ctx)
}
