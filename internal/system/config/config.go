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

import (
	"os"

	"github.com/wso2/identity-social-dataset-service/internal/system/constants"
	"gopkg.in/yaml.v2"
)

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type DataSourceConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type GeneratorConfig struct {
	NumUsers         int   `yaml:"num_users"`
	NumPosts         int   `yaml:"num_posts"`
	NumComments      int   `yaml:"num_comments"`
	NumNotifications int   `yaml:"num_notifications"`
	Seed             int64 `yaml:"seed"`
}

type Config struct {
	Log        LogConfig        `yaml:"log"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Generator  GeneratorConfig  `yaml:"generator"`
}

// LoadConfig reads the deployment YAML, expands ${ENV_VAR} references and
// fills omitted values with defaults.
func LoadConfig(filePath string) (*Config, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Log.LogLevel == "" {
		config.Log.LogLevel = "INFO"
	}
	if config.DataSource.URI == "" {
		config.DataSource.URI = "mongodb://localhost:27017"
	}
	if config.DataSource.Database == "" {
		config.DataSource.Database = "social_dataset"
	}
	if config.Generator.NumUsers == 0 {
		config.Generator.NumUsers = constants.DefaultNumUsers
	}
	if config.Generator.NumPosts == 0 {
		config.Generator.NumPosts = constants.DefaultNumPosts
	}
	if config.Generator.NumComments == 0 {
		config.Generator.NumComments = constants.DefaultNumComments
	}
	if config.Generator.NumNotifications == 0 {
		config.Generator.NumNotifications = constants.DefaultNumNotifications
	}
}
