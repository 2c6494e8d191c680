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

// User is a synthetic social-network account. Timestamps are kept in their
// canonical string form; EmailVerified is empty when the address was never
// verified. FollowingIDs and FollowersIDs hold freshly minted identifiers
// that need not reference generated users.
type User struct {
	UserID           string   `json:"user_id" bson:"user_id"`
	Name             string   `json:"name" bson:"name"`
	Username         string   `json:"username" bson:"username"`
	Bio              string   `json:"bio" bson:"bio"`
	Email            string   `json:"email" bson:"email"`
	EmailVerified    string   `json:"email_verified" bson:"email_verified"`
	Image            string   `json:"image" bson:"image"`
	CoverImage       string   `json:"cover_image" bson:"cover_image"`
	ProfileImage     string   `json:"profile_image" bson:"profile_image"`
	HashedPassword   string   `json:"hashed_password" bson:"hashed_password"`
	CreatedAt        string   `json:"created_at" bson:"created_at"`
	UpdatedAt        string   `json:"updated_at" bson:"updated_at"`
	FollowingIDs     []string `json:"following_ids" bson:"following_ids"`
	FollowersIDs     []string `json:"followers_ids" bson:"followers_ids"`
	HasNotifications bool     `json:"has_notifications" bson:"has_notifications"`
}
