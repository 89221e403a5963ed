/*
 *     Copyright 2024 The Pantry Peeper Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"
	"fmt"

	"github.com/avast/retry-go"
	"github.com/spf13/viper"

	logger "github.com/pantry-peeper/visionsetup/internal/pplog"
	"github.com/pantry-peeper/visionsetup/internal/pperrors"
	"github.com/pantry-peeper/visionsetup/vision"
)

type Config struct {
	// Console shows log and progress on console.
	Console bool `yaml:"console" mapstructure:"console"`

	// Verbose prints debug level logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Vision service configuration.
	Vision VisionConfig `yaml:"vision" mapstructure:"vision"`

	// Dataset configuration.
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`

	// Workspace configuration.
	Workspace WorkspaceConfig `yaml:"workspace" mapstructure:"workspace"`
}

type VisionConfig struct {
	// ServiceName selects the vision client implementation, like: azure, noop.
	ServiceName string `yaml:"serviceName" mapstructure:"serviceName"`

	// Endpoint is the service endpoint.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// APIKey is the service credential. It never appears on reports or logs.
	APIKey string `yaml:"apiKey" mapstructure:"apiKey"`

	// ProjectName is the vision project name.
	ProjectName string `yaml:"projectName" mapstructure:"projectName"`
}

type DatasetConfig struct {
	// ImageSize is the square edge length images are normalized to.
	ImageSize int `yaml:"imageSize" mapstructure:"imageSize"`

	// ImagesPerCategory is the number of images prepared per category.
	ImagesPerCategory int `yaml:"imagesPerCategory" mapstructure:"imagesPerCategory"`

	// TrainRatio is the fraction of images assigned to the training subset.
	TrainRatio float64 `yaml:"trainRatio" mapstructure:"trainRatio"`
}

type WorkspaceConfig struct {
	// WorkHome is the working directory holding prepared data.
	WorkHome string `yaml:"workHome" mapstructure:"workHome"`

	// LogDir is the log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// ReportDir is the directory report records are written to.
	ReportDir string `yaml:"reportDir" mapstructure:"reportDir"`
}

// Summary is the redacted configuration record carried on reports.
// It never includes the api key.
type Summary struct {
	Endpoint    string `json:"endpoint"`
	ProjectName string `json:"project_name"`
	ServiceType string `json:"service_type"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Vision: VisionConfig{
			ServiceName: vision.ServiceNameAzure,
			ProjectName: DefaultProjectName,
		},
		Dataset: DatasetConfig{
			ImageSize:         DefaultImageSize,
			ImagesPerCategory: DefaultImagesPerCategory,
			TrainRatio:        DefaultTrainRatio,
		},
		Workspace: WorkspaceConfig{},
	}
}

// Load resolves the optional configuration file and the environment.
// Environment values override file values.
func (cfg *Config) Load(path string) error {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read configuration file: %w", err)
		}
	}

	for key, env := range map[string]string{
		"vision.endpoint":    EnvVisionEndpoint,
		"vision.apiKey":      EnvVisionAPIKey,
		"vision.projectName": EnvVisionProject,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal configuration: %w", err)
	}

	return nil
}

// Validate config parameters. Missing credentials classify as invalid
// configuration and stop the pipeline before any data is prepared.
func (cfg *Config) Validate() error {
	if cfg.Vision.ServiceName == "" {
		return errors.New("vision requires parameter serviceName")
	}

	if cfg.Vision.Endpoint == "" {
		return fmt.Errorf("%w: vision requires parameter endpoint", pperrors.ErrInvalidConfiguration)
	}

	if cfg.Vision.APIKey == "" {
		return fmt.Errorf("%w: vision requires parameter apiKey", pperrors.ErrInvalidConfiguration)
	}

	if cfg.Vision.ProjectName == "" {
		return errors.New("vision requires parameter projectName")
	}

	if cfg.Dataset.ImageSize <= 0 {
		return errors.New("dataset requires parameter imageSize")
	}

	if cfg.Dataset.ImagesPerCategory <= 0 {
		return errors.New("dataset requires parameter imagesPerCategory")
	}

	if cfg.Dataset.TrainRatio <= 0 || cfg.Dataset.TrainRatio > 1 {
		return errors.New("dataset requires parameter trainRatio")
	}

	return nil
}

// Client constructs the configured vision client strategy.
func (cfg *Config) Client() (vision.Client, error) {
	return vision.New(cfg.Vision.ServiceName, cfg.Vision.Endpoint, cfg.Vision.APIKey)
}

// ValidateConnection probes the configured service. Probe failures are
// logged and reported as false, never as an error.
func (cfg *Config) ValidateConnection() bool {
	if err := retry.Do(
		func() error {
			_, err := cfg.Client()
			return err
		},
		retry.Attempts(DefaultProbeAttempts),
		retry.LastErrorOnly(true),
	); err != nil {
		logger.Warnf("validate connection to %s failed: %s", cfg.Vision.Endpoint, err.Error())
		return false
	}

	return true
}

// Summary returns the redacted configuration record.
func (cfg *Config) Summary() Summary {
	return Summary{
		Endpoint:    cfg.Vision.Endpoint,
		ProjectName: cfg.Vision.ProjectName,
		ServiceType: ServiceType,
	}
}
