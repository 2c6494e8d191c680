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
	"time"

	"github.com/wso2/identity-social-dataset-service/internal/system/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	bulkWriteTimeout = 2 * time.Minute
	queryTimeout     = 30 * time.Second
)

// wrapInsertError maps a bulk-insert failure onto the error catalogue. A
// unique-index violation is surfaced as DUPLICATE_DATASET_KEY and is never
// retried.
func wrapInsertError(msg errors.ErrorMessage, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return errors.NewServerError(errors.DUPLICATE_DATASET_KEY, err)
	}
	return errors.NewServerError(msg, err)
}
