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
	_ "embed"
	"strings"
	"unicode"
)

// The English stopword dictionary is fixed and shipped with the binary so
// normalization stays deterministic across deployments.
//
//go:embed stopwords_en.txt
var stopwordsFile string

var stopwords = loadStopwords()

func loadStopwords() map[string]struct{} {
	words := make(map[string]struct{})
	for _, line := range strings.Split(stopwordsFile, "\n") {
		word := strings.TrimSpace(line)
		if word != "" {
			words[word] = struct{}{}
		}
	}
	return words
}

// Normalize lowercases the text, tokenizes it on word boundaries, drops
// stopwords and pure punctuation, and rejoins the remaining tokens with
// single spaces. It is a pure function; empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	tokens := tokenize(strings.ToLower(text))

	kept := tokens[:0]
	for _, token := range tokens {
		token = strings.Trim(token, "'")
		if token == "" {
			continue
		}
		if _, stopword := stopwords[token]; stopword {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// NormalizeNullable is Normalize for optional fields; absent input yields
// the empty string, not an error.
func NormalizeNullable(text *string) string {
	if text == nil {
		return ""
	}
	return Normalize(*text)
}

// tokenize splits on anything that is not a letter, digit or apostrophe, so
// punctuation, hashtag and mention markers never survive as tokens. The
// apostrophe is kept inside tokens so contractions match the dictionary.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
