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
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/atomic"

	logger "github.com/pantry-peeper/visionsetup/internal/pplog"
)

const (
	// Run has been created but the pipeline did not start.
	RunStatePending = "Pending"

	// Run is validating configuration and constructing the vision client.
	RunStateConfiguring = "Configuring"

	// Run is organizing, splitting and persisting the dataset.
	RunStatePreparingData = "PreparingData"

	// Run is training the model.
	RunStateTraining = "Training"

	// Run is validating the trained model.
	RunStateValidating = "Validating"

	// Run is verifying the acceptance criteria.
	RunStateVerifyingAcceptance = "VerifyingAcceptance"

	// Run is writing the setup summary.
	RunStateSummarizing = "Summarizing"

	// Run finished with every acceptance criterion met.
	RunStateSucceeded = "Succeeded"

	// Run failed outright or finished with unmet acceptance criteria.
	RunStateFailed = "Failed"
)

const (
	// Run starts configuring.
	RunEventConfigure = "Configure"

	// Run starts preparing data.
	RunEventPrepareData = "PrepareData"

	// Run starts training.
	RunEventTrain = "Train"

	// Run starts validating.
	RunEventValidate = "Validate"

	// Run starts verifying the acceptance criteria.
	RunEventVerifyAcceptance = "VerifyAcceptance"

	// Run starts summarizing.
	RunEventSummarize = "Summarize"

	// Run succeeded.
	RunEventSucceed = "Succeed"

	// Run failed.
	RunEventFail = "Fail"
)

// Run contains content for one setup run.
type Run struct {
	// ID is run id.
	ID string

	// Run state machine.
	FSM *fsm.FSM

	// CreatedAt is run create time.
	CreatedAt *atomic.Time

	// UpdatedAt is run update time.
	UpdatedAt *atomic.Time

	// Run log.
	Log *logger.SugaredLoggerOnWith
}

// NewRun creates a new setup run in pending state.
func NewRun() *Run {
	id := uuid.NewString()
	r := &Run{
		ID:        id,
		CreatedAt: atomic.NewTime(time.Now()),
		UpdatedAt: atomic.NewTime(time.Now()),
		Log:       logger.WithRunID(id),
	}

	// Initialize state machine.
	r.FSM = fsm.NewFSM(
		RunStatePending,
		fsm.Events{
			{Name: RunEventConfigure, Src: []string{RunStatePending}, Dst: RunStateConfiguring},
			{Name: RunEventPrepareData, Src: []string{RunStateConfiguring}, Dst: RunStatePreparingData},
			{Name: RunEventTrain, Src: []string{RunStatePreparingData}, Dst: RunStateTraining},
			{Name: RunEventValidate, Src: []string{RunStateTraining}, Dst: RunStateValidating},
			{Name: RunEventVerifyAcceptance, Src: []string{RunStateValidating}, Dst: RunStateVerifyingAcceptance},
			{Name: RunEventSummarize, Src: []string{RunStateVerifyingAcceptance}, Dst: RunStateSummarizing},
			{Name: RunEventSucceed, Src: []string{RunStateSummarizing}, Dst: RunStateSucceeded},
			{Name: RunEventFail, Src: []string{RunStateConfiguring, RunStatePreparingData, RunStateSummarizing}, Dst: RunStateFailed},
		},
		fsm.Callbacks{
			RunEventConfigure: func(ctx context.Context, e *fsm.Event) {
				r.UpdatedAt.Store(time.Now())
				r.Log.Infof("run state is %s", e.FSM.Current())
			},
			RunEventPrepareData: func(ctx context.Context, e *fsm.Event) {
				r.UpdatedAt.Store(time.Now())
				r.Log.Infof("run state is %s", e.FSM.Current())
			},
			RunEventTrain: func(ctx context.Context, e *fsm.Event) {
				r.UpdatedAt.Store(time.Now())
				r.Log.Infof("run state is %s", e.FSM.Current())
			},
			RunEventValidate: func(ctx context.Context, e *fsm.Event) {
				r.UpdatedAt.Store(time.Now())
				r.Log.Infof("run state is %s", e.FSM.Current())
			},
			RunEventVerifyAcceptance: func(ctx context.Context, e *fsm.Event) {
				r.UpdatedAt.Store(time.Now())
				r.Log.Infof("run state is %s", e.FSM.Current())
			},
			RunEventSummarize: func(ctx context.Context, e *fsm.Event) {
				r.UpdatedAt.Store(time.Now())
				r.Log.Infof("run state is %s", e.FSM.Current())
			},
			RunEventSucceed: func(ctx context.Context, e *fsm.Event) {
				r.UpdatedAt.Store(time.Now())
				r.Log.Infof("run state is %s", e.FSM.Current())
			},
			RunEventFail: func(ctx context.Context, e *fsm.Event) {
				r.UpdatedAt.Store(time.Now())
				r.Log.Infof("run state is %s", e.FSM.Current())
			},
		},
	)

	return r
}
