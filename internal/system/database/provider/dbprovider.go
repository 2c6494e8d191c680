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

package provider

import (
	"github.com/wso2/identity-social-dataset-service/internal/system/config"
	"github.com/wso2/identity-social-dataset-service/internal/system/database/client"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBProviderInterface defines the interface for getting document store clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct{}

var testDatabase *mongo.Database

// NewDBProvider creates a new instance of DBProvider.
func NewDBProvider() DBProviderInterface {

	return &DBProvider{}
}

// GetDBClient returns a document store client built from the runtime config.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {

	if testDatabase != nil {
		return &testDBClient{database: testDatabase}, nil
	}

	runtimeConfig := config.GetRuntime().Config
	return client.NewDBClient(runtimeConfig.DataSource.URI, runtimeConfig.DataSource.Database)
}

// SetTestDatabase overrides the provided database handle. Used by tests.
func SetTestDatabase(db *mongo.Database) {
	testDatabase = db
}

// testDBClient wraps an externally owned database handle; Close is a no-op
// because the test harness owns the connection.
type testDBClient struct {
	database *mongo.Database
}

func (c *testDBClient) Database() *mongo.Database { return c.database }

func (c *testDBClient) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

func (c *testDBClient) Close() error { return nil }
