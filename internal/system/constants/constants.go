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

package constants

import "time"

// Collection names in the document store. The four source collections are
// written only by the generation stage; the merged collection is written only
// by the merge engine.
const (
	UsersCollection         = "users"
	PostsCollection         = "posts"
	CommentsCollection      = "comments"
	NotificationsCollection = "notifications"
	MergedCollection        = "merged"
	LocksCollection         = "locks"
)

// TimestampLayout is the canonical string form every persisted timestamp
// uses. Timestamps are stored as strings, not BSON dates.
const TimestampLayout = "2006-01-02 15:04:05"

// Default target counts for a generation run.
const (
	DefaultNumUsers         = 10000
	DefaultNumPosts         = 10000
	DefaultNumComments      = 50000
	DefaultNumNotifications = 2000
)

// Run-lock keys. A lock document under one of these keys marks a stage run in
// progress; overlapping runs of the same stage are skipped.
const (
	GenerationLockKey = "dataset_generation"
	MergeLockKey      = "dataset_merge"
)

// DefaultRunLockTTL bounds how long a crashed run can keep its stage locked.
const DefaultRunLockTTL = 30 * time.Minute

type ContextKey string

// TraceIDContextKey carries the run trace ID through contexts.
const TraceIDContextKey ContextKey = "traceID"
