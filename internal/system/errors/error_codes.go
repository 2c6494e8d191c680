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

package errors

const errorPrefix = "SDS-"

var (
	// Client error codes

	INVALID_GENERATION_CONFIG = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Invalid generation configuration.",
		Description: "Every target entity count must be a positive integer. " +
			"The run is aborted before any data is written.",
	}

	// Server error codes

	CONNECT_DATASTORE = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while connecting to the document store.",
	}

	DUPLICATE_DATASET_KEY = ErrorMessage{
		Code:        errorPrefix + "15003",
		Message:     "Dataset insert violated a unique index.",
		Description: "The target collection already holds conflicting unique-index data. The insert is not retried.",
	}

	INSERT_USERS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while bulk-inserting users.",
	}

	INSERT_POSTS = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while bulk-inserting posts.",
	}

	INSERT_COMMENTS = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while bulk-inserting comments.",
	}

	INSERT_NOTIFICATIONS = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while bulk-inserting notifications.",
	}

	FETCH_USERS = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching users from the source collection.",
	}

	FETCH_USER_POSTS = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while fetching posts authored by the user.",
	}

	FETCH_USER_COMMENTS = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while fetching comments authored by the user.",
	}

	FETCH_USER_NOTIFICATIONS = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while fetching notifications addressed to the user.",
	}

	UPSERT_MERGED_DOCUMENT = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while upserting the consolidated user document.",
	}

	ENSURE_MERGED_INDEX = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while creating the unique index on the merged collection.",
	}

	ACQUIRE_RUN_LOCK = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while acquiring the pipeline run lock.",
	}

	RELEASE_RUN_LOCK = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while releasing the pipeline run lock.",
	}
)
