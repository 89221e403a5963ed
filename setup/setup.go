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

package setup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pantry-peeper/visionsetup/acceptance"
	"github.com/pantry-peeper/visionsetup/dataset"
	"github.com/pantry-peeper/visionsetup/internal/pperrors"
	logger "github.com/pantry-peeper/visionsetup/internal/pplog"
	"github.com/pantry-peeper/visionsetup/pkg/container/set"
	"github.com/pantry-peeper/visionsetup/pkg/workspace"
	"github.com/pantry-peeper/visionsetup/setup/config"
	"github.com/pantry-peeper/visionsetup/storage"
	"github.com/pantry-peeper/visionsetup/training"
	"github.com/pantry-peeper/visionsetup/validation"
)

// Setup defines the interface to drive the staged setup pipeline.
type Setup interface {
	// Run drives the pipeline once and returns the persisted summary.
	Run(ctx context.Context) (*SummaryRecord, error)
}

// setup implements Setup interface.
type setup struct {
	// config is setup configuration.
	config *config.Config

	// workspace is the directory layout of the run.
	workspace workspace.Workspace

	// preparer organizes and splits the dataset.
	preparer dataset.Preparer

	// trainer runs simulated training jobs.
	trainer training.Trainer

	// tester exercises the trained model.
	tester validation.ModelTester

	// acceptanceValidator checks the acceptance criteria.
	acceptanceValidator acceptance.Validator

	// storage persists split records.
	storage storage.Storage
}

// Option is a functional option for setup.
type Option func(s *setup)

// WithPreparer sets the dataset preparer.
func WithPreparer(preparer dataset.Preparer) Option {
	return func(s *setup) {
		s.preparer = preparer
	}
}

// WithTrainer sets the trainer.
func WithTrainer(trainer training.Trainer) Option {
	return func(s *setup) {
		s.trainer = trainer
	}
}

// WithModelTester sets the model tester.
func WithModelTester(tester validation.ModelTester) Option {
	return func(s *setup) {
		s.tester = tester
	}
}

// WithAcceptanceValidator sets the acceptance validator.
func WithAcceptanceValidator(validator acceptance.Validator) Option {
	return func(s *setup) {
		s.acceptanceValidator = validator
	}
}

// WithStorage sets the split record storage.
func WithStorage(storage storage.Storage) Option {
	return func(s *setup) {
		s.storage = storage
	}
}

// New returns a new Setup.
func New(cfg *config.Config, ws workspace.Workspace, options ...Option) Setup {
	s := &setup{
		config:    cfg,
		workspace: ws,
	}

	for _, opt := range options {
		opt(s)
	}

	if s.preparer == nil {
		s.preparer = dataset.New(ws.PreparedDir(), cfg.Dataset.ImageSize, cfg.Dataset.ImagesPerCategory, dataset.WithProgress(cfg.Console))
	}

	if s.trainer == nil {
		s.trainer = training.New()
	}

	if s.tester == nil {
		s.tester = validation.New(cfg)
	}

	if s.acceptanceValidator == nil {
		s.acceptanceValidator = acceptance.New(cfg, s.tester)
	}

	if s.storage == nil {
		s.storage = storage.New(ws.WorkHome())
	}

	return s
}

// Run drives the pipeline once. Configuration and data preparation
// failures abort the run; training and validation failures degrade it to
// partial results. The summary is written in every non-aborted run.
func (s *setup) Run(ctx context.Context) (*SummaryRecord, error) {
	run := NewRun()
	run.Log.Infof("starting %s setup for %s", ServiceName, ProjectName)

	if err := run.FSM.Event(ctx, RunEventConfigure); err != nil {
		return nil, err
	}

	configuration, err := s.configure(run)
	if err != nil {
		s.fail(ctx, run)
		return nil, err
	}

	if err := run.FSM.Event(ctx, RunEventPrepareData); err != nil {
		return nil, err
	}

	split, err := s.prepareData(run)
	if err != nil {
		s.fail(ctx, run)
		return nil, err
	}

	if err := run.FSM.Event(ctx, RunEventTrain); err != nil {
		return nil, err
	}
	trainingResult := s.train(ctx, run, split)

	if err := run.FSM.Event(ctx, RunEventValidate); err != nil {
		return nil, err
	}
	validationOutcome := s.validate(run, split)

	if err := run.FSM.Event(ctx, RunEventVerifyAcceptance); err != nil {
		return nil, err
	}
	acceptanceReport := s.verifyAcceptance(run)

	if err := run.FSM.Event(ctx, RunEventSummarize); err != nil {
		return nil, err
	}

	summary, err := s.summarize(run, configuration, trainingResult, validationOutcome, acceptanceReport)
	if err != nil {
		s.fail(ctx, run)
		return nil, err
	}

	if summary.OverallStatus != OverallStatusSuccess {
		s.fail(ctx, run)
		run.Log.Warnf("setup completed with unmet acceptance criteria")
		if acceptanceReport != nil {
			return summary, fmt.Errorf("%w: %s", pperrors.ErrCriteriaNotMet, acceptanceReport.Summary)
		}

		return summary, pperrors.ErrCriteriaNotMet
	}

	if err := run.FSM.Event(ctx, RunEventSucceed); err != nil {
		return nil, err
	}

	run.Log.Infof("setup completed successfully")
	return summary, nil
}

// fail transitions the run to failed state.
func (s *setup) fail(ctx context.Context, run *Run) {
	if err := run.FSM.Event(ctx, RunEventFail); err != nil {
		run.Log.Errorf("run state transition failed: %s", err.Error())
	}
}

// configure validates the configuration and constructs the vision
// client. The logged summary never includes the api key.
func (s *setup) configure(run *Run) (*config.Summary, error) {
	log := logger.WithRunAndStage(run.ID, RunStateConfiguring)

	if err := s.config.Validate(); err != nil {
		log.Errorf("configuration is invalid: %s", err.Error())
		return nil, err
	}

	if _, err := s.config.Client(); err != nil {
		log.Errorf("construct vision client failed: %s", err.Error())
		return nil, err
	}

	summary := s.config.Summary()
	log.Infof("configured %s endpoint %s for project %s", summary.ServiceType, summary.Endpoint, summary.ProjectName)
	return &summary, nil
}

// prepareData organizes the categories, prepares the split, persists the
// split records and writes the dataset manifest.
func (s *setup) prepareData(run *Run) (*dataset.Split, error) {
	log := logger.WithRunAndStage(run.ID, RunStatePreparingData)

	counts, err := s.preparer.OrganizeCategories()
	if err != nil {
		log.Errorf("organize categories failed: %s", err.Error())
		return nil, err
	}
	log.Infof("organized %d categories under %s", len(counts), s.workspace.PreparedDir())

	split, err := s.preparer.PrepareSplit(s.config.Dataset.TrainRatio)
	if err != nil {
		log.Errorf("prepare split failed: %s", err.Error())
		return nil, err
	}

	records := splitRecords(split)
	categories := set.New[string]()
	for _, record := range records {
		categories.Add(record.Category)
	}
	log.Infof("prepared %d training and %d validation samples across %d categories",
		len(split.Train), len(split.Validation), categories.Len())

	if err := s.storage.CreateSplit(records, run.ID); err != nil {
		log.Errorf("persist split records failed: %s", err.Error())
		return nil, err
	}

	manifestPath := filepath.Join(s.workspace.ReportDir(), DatasetManifestFilename)
	manifest, err := s.preparer.WriteManifest(manifestPath)
	if err != nil {
		log.Errorf("write dataset manifest failed: %s", err.Error())
		return nil, err
	}
	log.Infof("wrote manifest for %s %s to %s", manifest.DatasetName, manifest.Version, manifestPath)

	return split, nil
}

// train runs the training stage. A failure degrades the run to partial
// results instead of aborting it.
func (s *setup) train(ctx context.Context, run *Run, split *dataset.Split) *training.TrainingResult {
	log := logger.WithRunAndStage(run.ID, RunStateTraining)

	result, err := s.trainer.Train(ctx, split)
	if err != nil {
		log.Warnf("training incomplete: %s", err.Error())
		return nil
	}
	log.Infof("training job %s completed with accuracy %.2f", result.JobID, result.Metrics.Accuracy)

	reportPath := filepath.Join(s.workspace.ReportDir(), TrainingReportFilename)
	if _, err := s.trainer.SaveReport(reportPath); err != nil {
		log.Warnf("save training report failed: %s", err.Error())
		return result
	}
	log.Infof("saved training report to %s", reportPath)

	return result
}

// validate runs the validation stage over a bounded sample of the
// validation subset. A failure degrades the run to partial results.
func (s *setup) validate(run *Run, split *dataset.Split) *ValidationOutcome {
	log := logger.WithRunAndStage(run.ID, RunStateValidating)

	testImages := split.Validation
	if len(testImages) > ValidationSampleLimit {
		testImages = testImages[:ValidationSampleLimit]
	}

	outcome := &ValidationOutcome{}
	if len(testImages) == 0 {
		log.Warnf("no validation images available, skipping inference tests")
	} else {
		outcome.Validation = s.tester.RunValidationSuite(testImages)
		log.Infof("validation suite accuracy %.2f on %d images",
			outcome.Validation.Summary.Accuracy, outcome.Validation.TotalImages)
	}

	outcome.Performance = s.tester.TestPerformance(validation.DefaultPerformanceSampleSize)
	log.Infof("average inference time %.1fms, throughput %.1f images/sec",
		outcome.Performance.Metrics.AverageInferenceTimeMs, outcome.Performance.Metrics.ThroughputImagesPerSec)

	reportPath := filepath.Join(s.workspace.ReportDir(), TestReportFilename)
	if _, err := s.tester.GenerateTestReport(reportPath); err != nil {
		log.Warnf("save test report failed: %s", err.Error())
		return outcome
	}
	log.Infof("saved test report to %s", reportPath)

	return outcome
}

// verifyAcceptance runs the acceptance stage. A nil report counts as
// not met.
func (s *setup) verifyAcceptance(run *Run) *acceptance.Report {
	log := logger.WithRunAndStage(run.ID, RunStateVerifyingAcceptance)

	report := s.acceptanceValidator.Report()
	if report == nil {
		log.Warnf("acceptance validation produced no report")
		return nil
	}

	log.Infof("acceptance criteria: %s", report.Summary)
	for name, met := range report.CriteriaResults {
		if met {
			log.Infof("criterion met: %s", name)
		} else {
			log.Warnf("criterion not met: %s", name)
		}
	}

	return report
}

// summarize writes the setup summary. It runs in every non-aborted run,
// even when earlier stages were incomplete.
func (s *setup) summarize(run *Run, configuration *config.Summary, trainingResult *training.TrainingResult,
	validationOutcome *ValidationOutcome, acceptanceReport *acceptance.Report) (*SummaryRecord, error) {
	log := logger.WithRunAndStage(run.ID, RunStateSummarizing)

	status := OverallStatusInProgress
	if acceptanceReport != nil && acceptanceReport.AllCriteriaMet {
		status = OverallStatusSuccess
	}

	summary := &SummaryRecord{
		RunID:              run.ID,
		SetupDate:          time.Now().Format(SetupDateLayout),
		Project:            ProjectName,
		Service:            ServiceName,
		Configuration:      configuration,
		Training:           trainingResult,
		Validation:         validationOutcome,
		AcceptanceCriteria: acceptanceReport,
		OverallStatus:      status,
	}

	path := filepath.Join(s.workspace.ReportDir(), SetupSummaryFilename)
	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		log.Errorf("write setup summary failed: %s", err.Error())
		return nil, err
	}

	log.Infof("saved setup summary to %s with status %s", path, status)
	return summary, nil
}

// splitRecords flattens a dataset split into persistent records. The
// category of a sample is its parent directory name.
func splitRecords(split *dataset.Split) []storage.SplitRecord {
	records := make([]storage.SplitRecord, 0, len(split.Train)+len(split.Validation))
	for _, path := range split.Train {
		records = append(records, storage.SplitRecord{
			Path:     path,
			Category: filepath.Base(filepath.Dir(path)),
			Subset:   storage.SubsetTrain,
		})
	}

	for _, path := range split.Validation {
		records = append(records, storage.SplitRecord{
			Path:     path,
			Category: filepath.Base(filepath.Dir(path)),
			Subset:   storage.SubsetValidation,
		})
	}

	return records
}
