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

package acceptance_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pantry-peeper/visionsetup/acceptance"
	"github.com/pantry-peeper/visionsetup/acceptance/mocks"
)

func TestAcceptance_New(t *testing.T) {
	assert := assert.New(t)
	validator := acceptance.New(nil, nil)
	assert.Equal("validator", reflect.TypeOf(validator).Elem().Name())
}

func TestAcceptance_ValidateAll(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(connection *mocks.MockConnectionValidatorMockRecorder, accuracy *mocks.MockAccuracyCheckerMockRecorder)
		expect map[string]bool
	}{
		{
			name: "every criterion holds",
			mock: func(connection *mocks.MockConnectionValidatorMockRecorder, accuracy *mocks.MockAccuracyCheckerMockRecorder) {
				connection.ValidateConnection().Return(true).Times(1)
				accuracy.AccuracyAboveThreshold().Return(true).Times(1)
			},
			expect: map[string]bool{
				acceptance.Criteria[0].Name: true,
				acceptance.Criteria[1].Name: true,
			},
		},
		{
			name: "connection probe fails",
			mock: func(connection *mocks.MockConnectionValidatorMockRecorder, accuracy *mocks.MockAccuracyCheckerMockRecorder) {
				connection.ValidateConnection().Return(false).Times(1)
				accuracy.AccuracyAboveThreshold().Return(true).Times(1)
			},
			expect: map[string]bool{
				acceptance.Criteria[0].Name: false,
				acceptance.Criteria[1].Name: true,
			},
		},
		{
			name: "accuracy misses the threshold",
			mock: func(connection *mocks.MockConnectionValidatorMockRecorder, accuracy *mocks.MockAccuracyCheckerMockRecorder) {
				connection.ValidateConnection().Return(true).Times(1)
				accuracy.AccuracyAboveThreshold().Return(false).Times(1)
			},
			expect: map[string]bool{
				acceptance.Criteria[0].Name: true,
				acceptance.Criteria[1].Name: false,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			connection := mocks.NewMockConnectionValidator(ctrl)
			accuracy := mocks.NewMockAccuracyChecker(ctrl)
			tc.mock(connection.EXPECT(), accuracy.EXPECT())

			validator := acceptance.New(connection, accuracy)
			assert.Equal(tc.expect, validator.ValidateAll())
		})
	}
}

func TestAcceptance_ValidateAllWithoutCollaborators(t *testing.T) {
	assert := assert.New(t)
	validator := acceptance.New(nil, nil)

	assert.Equal(map[string]bool{
		acceptance.Criteria[0].Name: false,
		acceptance.Criteria[1].Name: false,
	}, validator.ValidateAll())
}

func TestAcceptance_Report(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(connection *mocks.MockConnectionValidatorMockRecorder, accuracy *mocks.MockAccuracyCheckerMockRecorder)
		expect func(t *testing.T, report *acceptance.Report)
	}{
		{
			name: "every criterion met",
			mock: func(connection *mocks.MockConnectionValidatorMockRecorder, accuracy *mocks.MockAccuracyCheckerMockRecorder) {
				connection.ValidateConnection().Return(true).Times(1)
				accuracy.AccuracyAboveThreshold().Return(true).Times(1)
			},
			expect: func(t *testing.T, report *acceptance.Report) {
				assert := assert.New(t)
				assert.True(report.AllCriteriaMet)
				assert.Equal("2/2 criteria met", report.Summary)
				assert.WithinDuration(time.Now(), report.ValidationTimestamp, time.Minute)
				assert.Equal(map[string]bool{
					acceptance.Criteria[0].Name: true,
					acceptance.Criteria[1].Name: true,
				}, report.CriteriaResults)
			},
		},
		{
			name: "one criterion met",
			mock: func(connection *mocks.MockConnectionValidatorMockRecorder, accuracy *mocks.MockAccuracyCheckerMockRecorder) {
				connection.ValidateConnection().Return(true).Times(1)
				accuracy.AccuracyAboveThreshold().Return(false).Times(1)
			},
			expect: func(t *testing.T, report *acceptance.Report) {
				assert := assert.New(t)
				assert.False(report.AllCriteriaMet)
				assert.Equal("1/2 criteria met", report.Summary)
			},
		},
		{
			name: "no criterion met",
			mock: func(connection *mocks.MockConnectionValidatorMockRecorder, accuracy *mocks.MockAccuracyCheckerMockRecorder) {
				connection.ValidateConnection().Return(false).Times(1)
				accuracy.AccuracyAboveThreshold().Return(false).Times(1)
			},
			expect: func(t *testing.T, report *acceptance.Report) {
				assert := assert.New(t)
				assert.False(report.AllCriteriaMet)
				assert.Equal("0/2 criteria met", report.Summary)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			connection := mocks.NewMockConnectionValidator(ctrl)
			accuracy := mocks.NewMockAccuracyChecker(ctrl)
			tc.mock(connection.EXPECT(), accuracy.EXPECT())

			validator := acceptance.New(connection, accuracy)
			tc.expect(t, validator.Report())
		})
	}
}
