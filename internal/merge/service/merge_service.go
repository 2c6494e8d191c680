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

package service

import (
	dataset "github.com/wso2/identity-social-dataset-service/internal/dataset/model"
	"github.com/wso2/identity-social-dataset-service/internal/merge/model"
	syscontext "github.com/wso2/identity-social-dataset-service/internal/system/context"
	"github.com/wso2/identity-social-dataset-service/internal/system/log"
)

// UserSource lists every user in the source collection.
type UserSource interface {
	AllUsers() ([]dataset.User, error)
}

// PostSource fetches posts by author.
type PostSource interface {
	FindByAuthor(userID string) ([]dataset.Post, error)
}

// CommentSource fetches comments by author.
type CommentSource interface {
	FindByAuthor(userID string) ([]dataset.Comment, error)
}

// NotificationSource fetches notifications by recipient.
type NotificationSource interface {
	FindByRecipient(userID string) ([]dataset.Notification, error)
}

// MergedSink upserts consolidated documents keyed by user_id.
type MergedSink interface {
	Upsert(document model.MergedUserDocument) error
}

// MergeService consolidates every user with their related documents and
// upserts the result. It is the only writer of the merged collection.
type MergeService struct {
	users         UserSource
	posts         PostSource
	comments      CommentSource
	notifications NotificationSource
	merged        MergedSink
}

// NewMergeService creates a new merge service over the given sources and sink.
func NewMergeService(users UserSource, posts PostSource, comments CommentSource,
	notifications NotificationSource, merged MergedSink) *MergeService {

	return &MergeService{
		users:         users,
		posts:         posts,
		comments:      comments,
		notifications: notifications,
		merged:        merged,
	}
}

// MergeReport summarizes one merge pass.
type MergeReport struct {
	Merged int
	Failed int
}

// MergeAll runs one merge pass over every user. A failure while fetching or
// upserting one user's documents is logged and counted but does not stop the
// pass; only a failure to list the users themselves aborts it. Re-running
// the pass on unchanged sources produces identical documents.
func (s *MergeService) MergeAll() (MergeReport, error) {
	logger := log.GetLogger().With(log.String("trace_id", syscontext.GenerateTraceID()))

	users, err := s.users.AllUsers()
	if err != nil {
		return MergeReport{}, err
	}
	logger.Info("Starting merge pass", log.Int("users", len(users)))

	var report MergeReport
	for _, user := range users {
		if err := s.mergeUser(user); err != nil {
			logger.Error("Failed to merge user", log.String("user_id", user.UserID), log.Error(err))
			report.Failed++
			continue
		}
		report.Merged++
	}

	logger.Info("Merge pass finished", log.Int("merged", report.Merged), log.Int("failed", report.Failed))
	return report, nil
}

func (s *MergeService) mergeUser(user dataset.User) error {
	posts, err := s.posts.FindByAuthor(user.UserID)
	if err != nil {
		return err
	}
	comments, err := s.comments.FindByAuthor(user.UserID)
	if err != nil {
		return err
	}
	notifications, err := s.notifications.FindByRecipient(user.UserID)
	if err != nil {
		return err
	}

	return s.merged.Upsert(BuildMergedDocument(user, posts, comments, notifications))
}

// BuildMergedDocument builds the consolidated document for one user: the
// user's bio and every sub-document body run through Normalize, sub-lists
// always present even when empty. The function is pure, so the merge
// algorithm stays independent of store semantics.
func BuildMergedDocument(user dataset.User, posts []dataset.Post, comments []dataset.Comment,
	notifications []dataset.Notification) model.MergedUserDocument {

	cleanedPosts := make([]dataset.Post, len(posts))
	for i, post := range posts {
		post.Body = Normalize(post.Body)
		cleanedPosts[i] = post
	}

	cleanedComments := make([]dataset.Comment, len(comments))
	for i, comment := range comments {
		comment.Body = Normalize(comment.Body)
		cleanedComments[i] = comment
	}

	cleanedNotifications := make([]dataset.Notification, len(notifications))
	for i, notification := range notifications {
		notification.Body = Normalize(notification.Body)
		cleanedNotifications[i] = notification
	}

	return model.MergedUserDocument{
		UserID:           user.UserID,
		Name:             user.Name,
		Username:         user.Username,
		Bio:              Normalize(user.Bio),
		Email:            user.Email,
		EmailVerified:    user.EmailVerified,
		Image:            user.Image,
		CoverImage:       user.CoverImage,
		ProfileImage:     user.ProfileImage,
		HashedPassword:   user.HashedPassword,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
		FollowingIDs:     emptyWhenNil(user.FollowingIDs),
		FollowersIDs:     emptyWhenNil(user.FollowersIDs),
		HasNotifications: user.HasNotifications,
		Posts:            cleanedPosts,
		Comments:         cleanedComments,
		Notifications:    cleanedNotifications,
	}
}

// emptyWhenNil keeps list fields as arrays in the stored document; consumers
// expect a list, possibly empty, never null.
func emptyWhenNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
