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

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/wso2/identity-social-dataset-service/internal/system/config"
	"github.com/wso2/identity-social-dataset-service/internal/system/log"
	"github.com/wso2/identity-social-dataset-service/test/setup"
	"go.mongodb.org/mongo-driver/mongo"
)

var testMongo *setup.TestMongo

func TestMain(m *testing.M) {
	ctx := context.Background()

	conf := config.Config{
		Log: config.LogConfig{
			LogLevel: "DEBUG",
		},
	}
	config.OverrideRuntime(conf)
	_ = log.Init("DEBUG")

	mongoEnv, err := setup.SetupTestMongo(ctx)
	if err != nil {
		fmt.Println("Mongo test container unavailable, integration tests will be skipped:", err)
	} else {
		testMongo = mongoEnv
	}

	code := m.Run()

	if testMongo != nil {
		testMongo.Terminate(ctx)
	}

	os.Exit(code)
}

// testDatabase hands each test its own database so runs never interfere.
func testDatabase(t *testing.T, name string) *mongo.Database {
	t.Helper()
	if testMongo == nil {
		t.Skip("document store container not available")
	}

	db := testMongo.Client.Database("sds_" + name)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
	})
	return db
}
