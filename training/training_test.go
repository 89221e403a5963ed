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

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pantry-peeper/visionsetup/dataset"
	"github.com/pantry-peeper/visionsetup/pkg/idgen"
)

var mockSplit = &dataset.Split{
	Train: []string{
		"pantry_data/prepared/flour/flour_0000.jpg",
		"pantry_data/prepared/flour/flour_0001.jpg",
		"pantry_data/prepared/sugar/sugar_0000.jpg",
	},
	Validation: []string{
		"pantry_data/prepared/flour/flour_0002.jpg",
	},
}

func TestTraining_New(t *testing.T) {
	assert := assert.New(t)
	trainer := New()
	assert.Equal("trainer", reflect.TypeOf(trainer).Elem().Name())
}

func TestTraining_CreateJob(t *testing.T) {
	tests := []struct {
		name   string
		split  *dataset.Split
		expect func(t *testing.T, job *TrainingJob)
	}{
		{
			name:  "creates job from split",
			split: mockSplit,
			expect: func(t *testing.T, job *TrainingJob) {
				assert := assert.New(t)
				assert.True(strings.HasPrefix(job.JobID, idgen.TrainingJobIDPrefix+"-"))
				assert.Len(job.JobID, len("pantry-20060102_150405"))
				assert.Equal(ModelType, job.ModelType)
				assert.Equal(DatasetCounts{TrainingSamples: 3, ValidationSamples: 1}, job.DatasetSplit)
				assert.Equal(DefaultHyperparameters, job.Hyperparameters)
				assert.Equal(DefaultAugmentation, job.Augmentation)
			},
		},
		{
			name:  "tolerates missing split",
			split: nil,
			expect: func(t *testing.T, job *TrainingJob) {
				assert := assert.New(t)
				assert.Equal(DatasetCounts{}, job.DatasetSplit)
				assert.Equal(ModelType, job.ModelType)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trainer := New()
			tc.expect(t, trainer.CreateJob(tc.split))
		})
	}
}

func TestTraining_Train(t *testing.T) {
	tests := []struct {
		name   string
		ctx    func() context.Context
		expect func(t *testing.T, trainer Trainer, result *TrainingResult, err error)
	}{
		{
			name: "returns completed result",
			ctx:  context.Background,
			expect: func(t *testing.T, trainer Trainer, result *TrainingResult, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(JobStateCompleted, result.Status)
				assert.True(strings.HasPrefix(result.JobID, idgen.TrainingJobIDPrefix+"-"))
				assert.Equal("models/"+result.JobID+"_final.model", result.ModelCheckpoint)
				assert.Equal(DatasetCounts{TrainingSamples: 3, ValidationSamples: 1}, result.Dataset)
				assert.Equal(SimulatedMetrics, result.Metrics)
				assert.WithinDuration(time.Now(), result.StartedAt, time.Minute)
				assert.WithinDuration(time.Now(), result.CompletedAt, time.Minute)
				assert.False(result.CompletedAt.Before(result.StartedAt))
			},
		},
		{
			name: "repeated runs report identical metrics",
			ctx:  context.Background,
			expect: func(t *testing.T, trainer Trainer, result *TrainingResult, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				second, err := trainer.Train(context.Background(), mockSplit)
				assert.NoError(err)
				assert.Equal(result.Metrics, second.Metrics)
				assert.Equal(result.Status, second.Status)
			},
		},
		{
			name: "returns error when context is canceled",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			expect: func(t *testing.T, trainer Trainer, result *TrainingResult, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, context.Canceled)
				assert.Nil(result)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trainer := New()
			result, err := trainer.Train(tc.ctx(), mockSplit)
			tc.expect(t, trainer, result, err)
		})
	}
}

func TestTraining_Evaluate(t *testing.T) {
	assert := assert.New(t)
	trainer := New()

	evaluation := trainer.Evaluate(mockSplit.Validation)
	assert.Equal(len(mockSplit.Validation), evaluation.TestSamples)
	assert.Equal(0.88, evaluation.OverallAccuracy)
	assert.False(evaluation.Timestamp.IsZero())
	assert.Len(evaluation.PerCategoryMetrics, len(dataset.Categories))

	for _, category := range dataset.Categories {
		metrics, ok := evaluation.PerCategoryMetrics[category]
		assert.True(ok, category)
		assert.GreaterOrEqual(metrics.Precision, 0.85)
		assert.Less(metrics.Precision, 0.95)
		assert.InDelta(metrics.Precision+0.02, metrics.Recall, 1e-9)
		assert.Greater(metrics.F1Score, metrics.Precision)
		assert.Less(metrics.F1Score, metrics.Recall)
		assert.Equal(50, metrics.Samples)
	}

	second := trainer.Evaluate(mockSplit.Validation)
	assert.Equal(evaluation.OverallAccuracy, second.OverallAccuracy)
	assert.Equal(evaluation.PerCategoryMetrics, second.PerCategoryMetrics)

	empty := trainer.Evaluate(nil)
	assert.Zero(empty.TestSamples)
}

func TestTraining_SaveReport(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		mock   func(t *testing.T, trainer Trainer, path string)
		expect func(t *testing.T, path string, err error)
	}{
		{
			name: "persists report after training and evaluation",
			file: "training_report.json",
			mock: func(t *testing.T, trainer Trainer, path string) {
				if _, err := trainer.Train(context.Background(), mockSplit); err != nil {
					t.Fatal(err)
				}
				trainer.Evaluate(mockSplit.Validation)
			},
			expect: func(t *testing.T, path string, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				b, err := os.ReadFile(path)
				assert.NoError(err)

				var report Report
				assert.NoError(json.Unmarshal(b, &report))
				assert.Equal(ModelName, report.ModelName)
				assert.Equal(ModelVersion, report.Version)
				assert.Equal(ModelStateReadyForDeployment, report.Status)
				assert.False(report.TrainingDate.IsZero())
				if assert.NotNil(report.Metrics) {
					assert.Equal(SimulatedMetrics, *report.Metrics)
				}
				if assert.Len(report.Logs, 3) {
					assert.Equal(EventTrainingJobCreated, report.Logs[0].Event)
					assert.Equal(EventTrainingCompleted, report.Logs[1].Event)
					assert.Equal(EventModelEvaluated, report.Logs[2].Event)
					assert.NotEmpty(report.Logs[0].JobID)
					assert.Empty(report.Logs[2].JobID)
					assert.Equal(0.88, report.Logs[2].Accuracy)
				}

				var raw struct {
					Logs []map[string]interface{} `json:"logs"`
				}
				assert.NoError(json.Unmarshal(b, &raw))
				assert.Contains(raw.Logs[0], "job_id")
				assert.NotContains(raw.Logs[0], "accuracy")
				assert.NotContains(raw.Logs[2], "job_id")
				assert.Contains(raw.Logs[2], "accuracy")
			},
		},
		{
			name: "persists empty report before training",
			file: "training_report.json",
			mock: func(t *testing.T, trainer Trainer, path string) {},
			expect: func(t *testing.T, path string, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				b, err := os.ReadFile(path)
				assert.NoError(err)
				assert.Contains(string(b), `"metrics": null`)
				assert.Contains(string(b), `"logs": []`)

				var report Report
				assert.NoError(json.Unmarshal(b, &report))
				assert.Nil(report.Metrics)
				assert.Empty(report.Logs)
				assert.Equal(ModelStateReadyForDeployment, report.Status)
			},
		},
		{
			name: "overwrites previous report",
			file: "training_report.json",
			mock: func(t *testing.T, trainer Trainer, path string) {
				if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
					t.Fatal(err)
				}
				if _, err := trainer.Train(context.Background(), mockSplit); err != nil {
					t.Fatal(err)
				}
			},
			expect: func(t *testing.T, path string, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				b, err := os.ReadFile(path)
				assert.NoError(err)

				var report Report
				assert.NoError(json.Unmarshal(b, &report))
				assert.Len(report.Logs, 2)
			},
		},
		{
			name: "returns error when report directory is missing",
			file: filepath.Join("missing", "training_report.json"),
			mock: func(t *testing.T, trainer Trainer, path string) {},
			expect: func(t *testing.T, path string, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Empty(path)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trainer := New()
			target := filepath.Join(t.TempDir(), tc.file)
			tc.mock(t, trainer, target)

			path, err := trainer.SaveReport(target)
			tc.expect(t, path, err)
		})
	}
}

func TestTraining_ModelStatus(t *testing.T) {
	assert := assert.New(t)
	trainer := New()

	status := trainer.ModelStatus()
	assert.Equal(ModelName, status.ModelName)
	assert.Equal(ModelStateTrained, status.Status)
	assert.Zero(status.Accuracy)
	assert.Nil(status.LastTrained)
	assert.True(status.ReadyForInference)

	_, err := trainer.Train(context.Background(), mockSplit)
	assert.NoError(err)

	status = trainer.ModelStatus()
	assert.Equal(SimulatedMetrics.Accuracy, status.Accuracy)
	if assert.NotNil(status.LastTrained) {
		assert.WithinDuration(time.Now(), *status.LastTrained, time.Minute)
	}
	assert.True(status.ReadyForInference)
}
