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

package model

// Post labels. A label is assigned exactly once, by the label injector, and
// is immutable afterwards.
const (
	LabelGenuine    = 0
	LabelMisleading = 1
)

// Post is a synthetic post. UserID references the authoring user; Image is
// empty when the post carries no image.
type Post struct {
	PostID    string   `json:"post_id" bson:"post_id"`
	Body      string   `json:"body" bson:"body"`
	UserID    string   `json:"user_id" bson:"user_id"`
	CreatedAt string   `json:"created_at" bson:"created_at"`
	UpdatedAt string   `json:"updated_at" bson:"updated_at"`
	LikedIDs  []string `json:"liked_ids" bson:"liked_ids"`
	Image     string   `json:"image" bson:"image"`
	Label     int      `json:"label" bson:"label"`
}
