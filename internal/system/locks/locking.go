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

package locks

import "time"

// DistributedLock serializes pipeline stage runs across processes. A stage
// acquires its key before touching the store and releases it when the run
// ends; a second run against a held key is skipped, not queued.
type DistributedLock interface {
	Acquire(key string, ttl time.Duration) (bool, error)
	Release(key string) error
}
