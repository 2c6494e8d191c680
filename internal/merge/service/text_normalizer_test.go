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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "lowercases and drops stopwords",
			text: "This is a simple TEST",
			want: "simple test",
		},
		{
			name: "strips punctuation tokens",
			text: "Wow!!! Such... a deal, right?",
			want: "wow deal right",
		},
		{
			name: "punctuation only",
			text: "!!! ... ??? --",
			want: "",
		},
		{
			name: "contractions match the dictionary",
			text: "Don't stop believing, you shouldn't quit",
			want: "stop believing quit",
		},
		{
			name: "hashtag and mention markers removed",
			text: "Check #ad from @john_doe now!",
			want: "check ad john doe",
		},
		{
			name: "digits survive",
			text: "Sale ends in 3 days",
			want: "sale ends 3 days",
		},
		{
			name: "whitespace collapsed",
			text: "  spaced    out   words  ",
			want: "spaced words",
		},
		{
			name: "all stopwords",
			text: "it is what it is",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.text))
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	text := "The QUICK brown fox, jumping over 2 lazy dogs!"
	assert.Equal(t, Normalize(text), Normalize(text))
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("A Sponsored #ad about this GREAT offer!")
	assert.Equal(t, once, Normalize(once))
}

func TestNormalizeNullable(t *testing.T) {
	assert.Equal(t, "", NormalizeNullable(nil))

	text := "An Optional BIO here"
	assert.Equal(t, "optional bio", NormalizeNullable(&text))
}
