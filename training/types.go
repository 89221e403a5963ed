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

package training

import "time"

const (
	// ModelName is the display name of the recognition model.
	ModelName = "Pantry Item Recognition Model"

	// ModelVersion is the version recorded on training reports.
	ModelVersion = "1.0"

	// ModelType is the architecture family of every training job.
	ModelType = "object_detection"

	// ModelCheckpointLayout is the symbolic checkpoint path of a
	// completed job. Checkpoints are never materialized on disk.
	ModelCheckpointLayout = "models/%s_final.model"
)

const (
	// JobStateCompleted is the terminal state of a training job.
	JobStateCompleted = "completed"

	// ModelStateTrained is the model state reported by ModelStatus.
	ModelStateTrained = "trained"

	// ModelStateReadyForDeployment is the model state recorded on
	// training reports.
	ModelStateReadyForDeployment = "ready_for_deployment"
)

// Training log event names.
const (
	EventTrainingJobCreated = "training_job_created"
	EventTrainingCompleted  = "training_completed"
	EventModelEvaluated     = "model_evaluated"
)

// Hyperparameters is the optimizer configuration of a training job.
type Hyperparameters struct {
	Epochs       int     `json:"epochs"`
	BatchSize    int     `json:"batch_size"`
	LearningRate float64 `json:"learning_rate"`
	Optimizer    string  `json:"optimizer"`
	LossFunction string  `json:"loss_function"`
}

// Augmentation is the data augmentation configuration of a training job.
type Augmentation struct {
	Rotation bool `json:"rotation"`
	Flip     bool `json:"flip"`
	Zoom     bool `json:"zoom"`
}

// DatasetCounts is the sample count of each dataset subset.
type DatasetCounts struct {
	TrainingSamples   int `json:"training_samples"`
	ValidationSamples int `json:"validation_samples"`
}

// TrainingJob is the configuration of a submitted training job,
// immutable after creation.
type TrainingJob struct {
	JobID           string          `json:"job_id"`
	ModelType       string          `json:"model_type"`
	DatasetSplit    DatasetCounts   `json:"dataset_split"`
	Hyperparameters Hyperparameters `json:"hyperparameters"`
	Augmentation    Augmentation    `json:"augmentation"`
}

// Metrics is the metric block of a completed training job.
type Metrics struct {
	Accuracy           float64 `json:"accuracy"`
	Precision          float64 `json:"precision"`
	Recall             float64 `json:"recall"`
	F1Score            float64 `json:"f1_score"`
	ValidationAccuracy float64 `json:"validation_accuracy"`
	TrainingLoss       float64 `json:"training_loss"`
	ValidationLoss     float64 `json:"validation_loss"`
}

// TrainingResult is the outcome of a completed training job.
type TrainingResult struct {
	JobID           string        `json:"job_id"`
	Status          string        `json:"status"`
	StartedAt       time.Time     `json:"started_at"`
	CompletedAt     time.Time     `json:"completed_at"`
	Dataset         DatasetCounts `json:"dataset"`
	Metrics         Metrics       `json:"metrics"`
	ModelCheckpoint string        `json:"model_checkpoint"`
}

// CategoryMetrics is the per-category score block of an evaluation.
type CategoryMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`
	Samples   int     `json:"samples"`
}

// Evaluation is the outcome of scoring the model against held-out images.
type Evaluation struct {
	TestSamples        int                        `json:"test_samples"`
	OverallAccuracy    float64                    `json:"overall_accuracy"`
	PerCategoryMetrics map[string]CategoryMetrics `json:"per_category_metrics"`
	Timestamp          time.Time                  `json:"timestamp"`
}

// LogEntry is one event in the training log. JobID is set on job
// lifecycle events, Accuracy on evaluation events.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     string    `json:"event"`
	JobID     string    `json:"job_id,omitempty"`
	Accuracy  float64   `json:"accuracy,omitempty"`
}

// Report is the persisted training report.
type Report struct {
	ModelName    string     `json:"model_name"`
	Version      string     `json:"version"`
	TrainingDate time.Time  `json:"training_date"`
	Metrics      *Metrics   `json:"metrics"`
	Logs         []LogEntry `json:"logs"`
	Status       string     `json:"status"`
}

// ModelStatus is the current state of the trained model. LastTrained is
// nil until a training job has completed.
type ModelStatus struct {
	ModelName         string     `json:"model_name"`
	Status            string     `json:"status"`
	Accuracy          float64    `json:"accuracy"`
	LastTrained       *time.Time `json:"last_trained"`
	ReadyForInference bool       `json:"ready_for_inference"`
}

// SimulatedMetrics is the metric block returned for every completed
// training job. Training runs against a simulation stand-in until the
// Azure custom model endpoint is provisioned.
var SimulatedMetrics = Metrics{
	Accuracy:           0.92,
	Precision:          0.89,
	Recall:             0.91,
	F1Score:            0.90,
	ValidationAccuracy: 0.87,
	TrainingLoss:       0.15,
	ValidationLoss:     0.22,
}

// DefaultHyperparameters is the optimizer configuration applied to
// every training job.
var DefaultHyperparameters = Hyperparameters{
	Epochs:       50,
	BatchSize:    32,
	LearningRate: 0.001,
	Optimizer:    "adam",
	LossFunction: "categorical_crossentropy",
}

// DefaultAugmentation is the augmentation configuration applied to
// every training job.
var DefaultAugmentation = Augmentation{
	Rotation: true,
	Flip:     true,
	Zoom:     true,
}
