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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	datasetmodel "github.com/wso2/identity-social-dataset-service/internal/dataset/model"
	datasetservice "github.com/wso2/identity-social-dataset-service/internal/dataset/service"
	datasetstore "github.com/wso2/identity-social-dataset-service/internal/dataset/store"
	mergedmodel "github.com/wso2/identity-social-dataset-service/internal/merge/model"
	mergeservice "github.com/wso2/identity-social-dataset-service/internal/merge/service"
	mergedstore "github.com/wso2/identity-social-dataset-service/internal/merge/store"
	"github.com/wso2/identity-social-dataset-service/internal/system/config"
	"github.com/wso2/identity-social-dataset-service/internal/system/constants"
	"github.com/wso2/identity-social-dataset-service/internal/system/database/provider"
	syserrors "github.com/wso2/identity-social-dataset-service/internal/system/errors"
	"github.com/wso2/identity-social-dataset-service/internal/system/locks"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type pipelineStores struct {
	users         *datasetstore.UserStore
	posts         *datasetstore.PostStore
	comments      *datasetstore.CommentStore
	notifications *datasetstore.NotificationStore
	merged        *mergedstore.MergedStore
}

func newPipelineStores(db *mongo.Database) pipelineStores {
	return pipelineStores{
		users:         datasetstore.NewUserStore(db, constants.UsersCollection),
		posts:         datasetstore.NewPostStore(db, constants.PostsCollection),
		comments:      datasetstore.NewCommentStore(db, constants.CommentsCollection),
		notifications: datasetstore.NewNotificationStore(db, constants.NotificationsCollection),
		merged:        mergedstore.NewMergedStore(db, constants.MergedCollection),
	}
}

func generateAndPersist(t *testing.T, stores pipelineStores, seed int64) *datasetservice.Dataset {
	t.Helper()

	cfg := config.GeneratorConfig{NumUsers: 20, NumPosts: 40, NumComments: 60, NumNotifications: 15}
	generator, err := datasetservice.NewGenerator(cfg, seed)
	require.NoError(t, err)

	dataset := generator.Generate()

	injector := datasetservice.NewLabelInjector(seed + 1)
	injector.Inject(dataset.Posts, injector.SelectMisleadingUsers(dataset.Users))

	require.NoError(t, stores.users.InsertUsers(dataset.Users))
	require.NoError(t, stores.posts.InsertPosts(dataset.Posts))
	require.NoError(t, stores.comments.InsertComments(dataset.Comments))
	require.NoError(t, stores.notifications.InsertNotifications(dataset.Notifications))

	return dataset
}

func newPipelineMergeService(stores pipelineStores) *mergeservice.MergeService {
	return mergeservice.NewMergeService(
		stores.users, stores.posts, stores.comments, stores.notifications, stores.merged)
}

func TestGenerateAndMergePipeline(t *testing.T) {
	db := testDatabase(t, "pipeline")
	stores := newPipelineStores(db)

	dataset := generateAndPersist(t, stores, 42)

	require.NoError(t, stores.merged.EnsureIndexes())
	report, err := newPipelineMergeService(stores).MergeAll()
	require.NoError(t, err)
	assert.Equal(t, mergeservice.MergeReport{Merged: 20, Failed: 0}, report)

	count, err := stores.merged.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(20), count)

	// Pick one user and check the full consolidated shape.
	user := dataset.Users[0]
	merged, err := stores.merged.FindByUserID(user.UserID)
	require.NoError(t, err)
	require.NotNil(t, merged)

	assert.Equal(t, user.Name, merged.Name)
	assert.Equal(t, user.Email, merged.Email)
	assert.Equal(t, user.CreatedAt, merged.CreatedAt)
	assert.Equal(t, mergeservice.Normalize(user.Bio), merged.Bio)

	var expectedPosts []datasetmodel.Post
	for _, post := range dataset.Posts {
		if post.UserID == user.UserID {
			post.Body = mergeservice.Normalize(post.Body)
			expectedPosts = append(expectedPosts, post)
		}
	}
	assert.ElementsMatch(t, expectedPosts, merged.Posts)

	expectedComments := 0
	for _, comment := range dataset.Comments {
		if comment.UserID == user.UserID {
			expectedComments++
		}
	}
	assert.Len(t, merged.Comments, expectedComments)

	expectedNotifications := 0
	for _, notification := range dataset.Notifications {
		if notification.UserID == user.UserID {
			expectedNotifications++
		}
	}
	assert.Len(t, merged.Notifications, expectedNotifications)
}

func TestMergePassIsRepeatable(t *testing.T) {
	db := testDatabase(t, "repeatable")
	stores := newPipelineStores(db)

	generateAndPersist(t, stores, 7)

	require.NoError(t, stores.merged.EnsureIndexes())
	service := newPipelineMergeService(stores)

	_, err := service.MergeAll()
	require.NoError(t, err)
	firstPass := fetchMergedDocuments(t, db)

	_, err = service.MergeAll()
	require.NoError(t, err)
	secondPass := fetchMergedDocuments(t, db)

	assert.Equal(t, firstPass, secondPass)

	count, err := stores.merged.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(20), count)
}

func TestMergeUserWithoutRelatedDocuments(t *testing.T) {
	db := testDatabase(t, "lonely")
	stores := newPipelineStores(db)

	user := datasetmodel.User{
		UserID:       "lonely-user",
		Name:         "Lonely User",
		Bio:          "No posts at ALL here",
		FollowingIDs: []string{},
		FollowersIDs: []string{},
	}
	require.NoError(t, stores.users.InsertUsers([]datasetmodel.User{user}))

	report, err := newPipelineMergeService(stores).MergeAll()
	require.NoError(t, err)
	assert.Equal(t, mergeservice.MergeReport{Merged: 1, Failed: 0}, report)

	merged, err := stores.merged.FindByUserID("lonely-user")
	require.NoError(t, err)
	require.NotNil(t, merged)

	assert.Equal(t, "posts", merged.Bio)
	assert.Empty(t, merged.Posts)
	assert.Empty(t, merged.Comments)
	assert.Empty(t, merged.Notifications)
	assert.Equal(t, []string{}, merged.FollowingIDs)
}

func TestFindByUserIDUnknownUser(t *testing.T) {
	db := testDatabase(t, "unknown")
	stores := newPipelineStores(db)

	merged, err := stores.merged.FindByUserID("no-such-user")
	require.NoError(t, err)
	assert.Nil(t, merged)
}

func TestDuplicateInsertSurfacesTypedError(t *testing.T) {
	db := testDatabase(t, "duplicate")
	stores := newPipelineStores(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := db.Collection(constants.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	require.NoError(t, err)

	users := []datasetmodel.User{{UserID: "dup-user", Name: "First"}}
	require.NoError(t, stores.users.InsertUsers(users))

	err = stores.users.InsertUsers(users)
	require.Error(t, err)

	var serverErr *syserrors.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, syserrors.DUPLICATE_DATASET_KEY.Code, serverErr.Code)
}

func TestRunLockGuardsOverlappingRuns(t *testing.T) {
	db := testDatabase(t, "locks")
	lock := locks.NewMongoLock(db)

	acquired, err := lock.Acquire(constants.GenerationLockKey, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = lock.Acquire(constants.GenerationLockKey, time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "second acquire while held must fail")

	require.NoError(t, lock.Release(constants.GenerationLockKey))

	acquired, err = lock.Acquire(constants.GenerationLockKey, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired, "re-acquire after release must succeed")
	require.NoError(t, lock.Release(constants.GenerationLockKey))
}

func TestRunLockEvictsExpiredHolder(t *testing.T) {
	db := testDatabase(t, "locks_ttl")
	lock := locks.NewMongoLock(db)

	acquired, err := lock.Acquire(constants.MergeLockKey, 50*time.Millisecond)
	require.NoError(t, err)
	require.True(t, acquired)

	time.Sleep(100 * time.Millisecond)

	acquired, err = lock.Acquire(constants.MergeLockKey, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired, "expired lock must be evictable")
	require.NoError(t, lock.Release(constants.MergeLockKey))
}

func TestProviderServesOverriddenDatabase(t *testing.T) {
	db := testDatabase(t, "provider")
	provider.SetTestDatabase(db)
	t.Cleanup(func() { provider.SetTestDatabase(nil) })

	dbClient, err := provider.NewDBProvider().GetDBClient()
	require.NoError(t, err)
	defer dbClient.Close()

	stores := pipelineStores{
		users:         datasetstore.NewUserStore(dbClient.Database(), constants.UsersCollection),
		posts:         datasetstore.NewPostStore(dbClient.Database(), constants.PostsCollection),
		comments:      datasetstore.NewCommentStore(dbClient.Database(), constants.CommentsCollection),
		notifications: datasetstore.NewNotificationStore(dbClient.Database(), constants.NotificationsCollection),
		merged:        mergedstore.NewMergedStore(dbClient.Database(), constants.MergedCollection),
	}

	generateAndPersist(t, stores, 11)

	report, err := newPipelineMergeService(stores).MergeAll()
	require.NoError(t, err)
	assert.Equal(t, mergeservice.MergeReport{Merged: 20, Failed: 0}, report)
}

func fetchMergedDocuments(t *testing.T, db *mongo.Database) []mergedmodel.MergedUserDocument {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.Collection(constants.MergedCollection).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "user_id", Value: 1}}))
	require.NoError(t, err)

	documents := make([]mergedmodel.MergedUserDocument, 0)
	require.NoError(t, cursor.All(ctx, &documents))
	return documents
}
