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
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/wso2/identity-social-dataset-service/internal/dataset/model"
)

const (
	misleadingUserFraction = 0.10
	disclosureStripChance  = 0.70

	maxHashtagsPerPost  = 5
	maxMentionsPerPost  = 5
	minMisleadingPromos = 2
	maxMisleadingPromos = 5
	maxGenuinePromos    = 3

	tokenPoolSize = 1000
)

// promoKeywords is the fixed promotional vocabulary the injector appends.
// Misleading posts get a higher density than genuine ones; the keywords
// themselves appear in both classes.
var promoKeywords = []string{"ad", "sponsored", "promotion", "discount", "sale", "deal", "offer"}

// disclosureTokens are literal advertising disclosures a misleading post may
// drop from its body, simulating non-disclosure.
var disclosureTokens = map[string]struct{}{
	"ad":         {},
	"sponsored":  {},
	"#ad":        {},
	"#sponsored": {},
}

// LabelInjector assigns each post its binary ground-truth label and mutates
// the body to match the chosen path. Label and mutation are decided together
// in a single pass, so they can never diverge.
type LabelInjector struct {
	rnd      *rand.Rand
	hashtags []string
	mentions []string
}

// NewLabelInjector builds an injector with its own seeded random source and
// synthetic hashtag/mention pools.
func NewLabelInjector(seed int64) *LabelInjector {
	faker := gofakeit.New(uint64(seed))

	hashtags := make([]string, tokenPoolSize)
	mentions := make([]string, tokenPoolSize)
	for i := 0; i < tokenPoolSize; i++ {
		hashtags[i] = "#" + faker.Word()
		mentions[i] = "@" + faker.Username()
	}

	return &LabelInjector{
		rnd:      rand.New(rand.NewSource(seed)),
		hashtags: hashtags,
		mentions: mentions,
	}
}

// SelectMisleadingUsers draws 10% of the user identifiers uniformly without
// replacement. The subset is re-drawn for every run and never persisted.
func (inj *LabelInjector) SelectMisleadingUsers(users []model.User) map[string]struct{} {
	count := int(misleadingUserFraction * float64(len(users)))

	subset := make(map[string]struct{}, count)
	for _, idx := range inj.rnd.Perm(len(users))[:count] {
		subset[users[idx].UserID] = struct{}{}
	}
	return subset
}

// Inject labels every post in place. A post by a misleading user is marked
// misleading on a fair coin flip; all other posts stay genuine.
func (inj *LabelInjector) Inject(posts []model.Post, misleadingUsers map[string]struct{}) {
	for i := range posts {
		_, suspectAuthor := misleadingUsers[posts[i].UserID]
		inj.decorate(&posts[i], suspectAuthor && inj.rnd.Float64() < 0.5)
	}
}

// decorate mutates the post body for the decided label and sets the label
// field, exactly once. Hashtags and mentions are appended on both paths; they
// are noise, not the signal. Either path may append zero promotional
// keywords, which is valid.
func (inj *LabelInjector) decorate(post *model.Post, misleading bool) {
	for n := inj.rnd.Intn(maxHashtagsPerPost + 1); n > 0; n-- {
		post.Body += " " + inj.hashtags[inj.rnd.Intn(len(inj.hashtags))]
	}
	for n := inj.rnd.Intn(maxMentionsPerPost + 1); n > 0; n-- {
		post.Body += " " + inj.mentions[inj.rnd.Intn(len(inj.mentions))]
	}

	if misleading {
		for n := minMisleadingPromos + inj.rnd.Intn(maxMisleadingPromos-minMisleadingPromos+1); n > 0; n-- {
			post.Body += " " + promoKeywords[inj.rnd.Intn(len(promoKeywords))]
		}
		if inj.rnd.Float64() < disclosureStripChance {
			post.Body = stripDisclosures(post.Body)
		}
		post.Label = model.LabelMisleading
		return
	}

	for n := inj.rnd.Intn(maxGenuinePromos + 1); n > 0; n-- {
		post.Body += " " + promoKeywords[inj.rnd.Intn(len(promoKeywords))]
	}
	post.Label = model.LabelGenuine
}

// stripDisclosures removes literal disclosure tokens from the body.
func stripDisclosures(body string) string {
	fields := strings.Fields(body)

	kept := fields[:0]
	for _, token := range fields {
		if _, disclosure := disclosureTokens[strings.ToLower(token)]; disclosure {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}
