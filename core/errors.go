// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRule indicates a Rule failed validation.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidTrainingRun indicates a TrainingRun failed validation.
	ErrInvalidTrainingRun = errors.New("invalid training run")

	// ErrEmptyRuleId indicates the rule Id field is empty.
	ErrEmptyRuleId = errors.New("rule id cannot be empty")

	// ErrEmptyRuleType indicates the rule Type field is empty.
	ErrEmptyRuleType = errors.New("rule type cannot be empty")

	// ErrConfidenceOutOfRange indicates a confidence outside [0, 1].
	ErrConfidenceOutOfRange = errors.New("confidence must be between 0 and 1")

	// ErrNegativeWeight indicates a negative rule weight.
	ErrNegativeWeight = errors.New("weight cannot be negative")

	// ErrEmptyRunTask indicates the run Task field is empty.
	ErrEmptyRunTask = errors.New("run task cannot be empty")
)
