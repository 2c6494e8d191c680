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
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/wso2/identity-social-dataset-service/internal/dataset/model"
	"github.com/wso2/identity-social-dataset-service/internal/system/config"
	"github.com/wso2/identity-social-dataset-service/internal/system/constants"
	"github.com/wso2/identity-social-dataset-service/internal/system/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxFollowListSize  = 50
	maxBioLength       = 160
	userHistorySpan    = 5 * 365 * 24 * time.Hour
	contentHistorySpan = 365 * 24 * time.Hour
)

// Dataset holds one complete generation run, in memory, before it is handed
// to the dataset writer.
type Dataset struct {
	Users         []model.User
	Posts         []model.Post
	Comments      []model.Comment
	Notifications []model.Notification
}

// Generator produces internally consistent synthetic entities. All
// randomness flows through the explicit seeded sources so a run is
// reproducible from its seed.
type Generator struct {
	cfg   config.GeneratorConfig
	rnd   *rand.Rand
	faker *gofakeit.Faker
	now   time.Time
}

// NewGenerator validates the target counts and builds a generator. Counts
// must all be positive; validation happens before any I/O.
func NewGenerator(cfg config.GeneratorConfig, seed int64) (*Generator, error) {
	if cfg.NumUsers <= 0 || cfg.NumPosts <= 0 || cfg.NumComments <= 0 || cfg.NumNotifications <= 0 {
		return nil, errors.NewClientError(errors.INVALID_GENERATION_CONFIG)
	}

	return &Generator{
		cfg:   cfg,
		rnd:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
		now:   time.Now().UTC(),
	}, nil
}

// Generate produces the configured number of entities. Posts, comments and
// notifications reference users (and posts) drawn uniformly from the
// generated pools; follow lists and like lists hold freshly minted
// identifiers, which is an accepted synthetic-data simplification.
func (g *Generator) Generate() *Dataset {
	users := g.generateUsers()
	posts := g.generatePosts(users)

	return &Dataset{
		Users:         users,
		Posts:         posts,
		Comments:      g.generateComments(users, posts),
		Notifications: g.generateNotifications(users),
	}
}

func (g *Generator) generateUsers() []model.User {
	users := make([]model.User, 0, g.cfg.NumUsers)
	for i := 0; i < g.cfg.NumUsers; i++ {
		createdAt := g.timeWithin(userHistorySpan)

		emailVerified := ""
		if g.rnd.Float64() < 0.5 {
			emailVerified = formatTimestamp(g.timeWithin(contentHistorySpan))
		}

		users = append(users, model.User{
			UserID:           mintID(),
			Name:             g.faker.Name(),
			Username:         g.faker.Username(),
			Bio:              truncate(g.faker.Sentence(12), maxBioLength),
			Email:            g.faker.Email(),
			EmailVerified:    emailVerified,
			Image:            g.faker.ImageURL(640, 480),
			CoverImage:       g.faker.ImageURL(1280, 400),
			ProfileImage:     g.faker.ImageURL(256, 256),
			HashedPassword:   hashCredential(g.faker.Password(true, true, true, false, false, 16)),
			CreatedAt:        formatTimestamp(createdAt),
			UpdatedAt:        formatTimestamp(g.timeBetween(createdAt, g.now)),
			FollowingIDs:     mintIDs(g.rnd.Intn(maxFollowListSize + 1)),
			FollowersIDs:     mintIDs(g.rnd.Intn(maxFollowListSize + 1)),
			HasNotifications: g.rnd.Intn(2) == 1,
		})
	}
	return users
}

func (g *Generator) generatePosts(users []model.User) []model.Post {
	likedCap := g.cfg.NumUsers / 10

	posts := make([]model.Post, 0, g.cfg.NumPosts)
	for i := 0; i < g.cfg.NumPosts; i++ {
		createdAt := g.timeWithin(contentHistorySpan)

		image := ""
		if g.rnd.Float64() < 0.5 {
			image = g.faker.ImageURL(640, 480)
		}

		posts = append(posts, model.Post{
			PostID:    mintID(),
			Body:      g.faker.Sentence(8),
			UserID:    users[g.rnd.Intn(len(users))].UserID,
			CreatedAt: formatTimestamp(createdAt),
			UpdatedAt: formatTimestamp(g.timeBetween(createdAt, g.now)),
			LikedIDs:  mintIDs(g.rnd.Intn(likedCap + 1)),
			Image:     image,
			Label:     model.LabelGenuine,
		})
	}
	return posts
}

func (g *Generator) generateComments(users []model.User, posts []model.Post) []model.Comment {
	comments := make([]model.Comment, 0, g.cfg.NumComments)
	for i := 0; i < g.cfg.NumComments; i++ {
		createdAt := g.timeWithin(contentHistorySpan)

		comments = append(comments, model.Comment{
			CommentID: mintID(),
			Body:      g.faker.Sentence(8),
			UserID:    users[g.rnd.Intn(len(users))].UserID,
			PostID:    posts[g.rnd.Intn(len(posts))].PostID,
			CreatedAt: formatTimestamp(createdAt),
			UpdatedAt: formatTimestamp(g.timeBetween(createdAt, g.now)),
		})
	}
	return comments
}

func (g *Generator) generateNotifications(users []model.User) []model.Notification {
	notifications := make([]model.Notification, 0, g.cfg.NumNotifications)
	for i := 0; i < g.cfg.NumNotifications; i++ {
		notifications = append(notifications, model.Notification{
			NotificationID: mintID(),
			Body:           g.faker.Sentence(8),
			UserID:         users[g.rnd.Intn(len(users))].UserID,
			CreatedAt:      formatTimestamp(g.timeWithin(contentHistorySpan)),
		})
	}
	return notifications
}

// timeWithin returns a uniformly random instant in [now-span, now].
func (g *Generator) timeWithin(span time.Duration) time.Time {
	return g.now.Add(-time.Duration(g.rnd.Int63n(int64(span) + 1)))
}

// timeBetween returns a uniformly random instant in [from, to].
func (g *Generator) timeBetween(from, to time.Time) time.Time {
	window := to.Sub(from)
	if window <= 0 {
		return from
	}
	return from.Add(time.Duration(g.rnd.Int63n(int64(window) + 1)))
}

// mintID mints an opaque, collision-resistant string identifier.
func mintID() string {
	return primitive.NewObjectID().Hex()
}

func mintIDs(count int) []string {
	ids := make([]string, count)
	for i := range ids {
		ids[i] = mintID()
	}
	return ids
}

func hashCredential(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampLayout)
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
