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

package config

import "sync"

// Runtime holds the configuration the current process runs with.
type Runtime struct {
	Config Config
}

var (
	runtime   *Runtime
	runtimeMu sync.RWMutex
)

// InitializeRuntime sets the runtime configuration for the process.
func InitializeRuntime(config *Config) {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	runtime = &Runtime{Config: *config}
}

// GetRuntime returns the current runtime configuration. It panics when the
// runtime was never initialized, which is a programming error.
func GetRuntime() *Runtime {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()
	if runtime == nil {
		panic("config: runtime accessed before initialization")
	}
	return runtime
}

// OverrideRuntime replaces the runtime configuration. Used by tests.
func OverrideRuntime(config Config) {
	applyDefaults(&config)
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	runtime = &Runtime{Config: config}
}
