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

import "fmt"

// ValidateRule validates a Rule according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Type must not be empty
//   - Confidence must be within [0, 1]
//   - Weight must not be negative
//
// NOT validated:
//   - Premise/Conclusion (empty sets are legal degraded input)
func ValidateRule(rule *Rule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule is nil", ErrInvalidRule)
	}

	if rule.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyRuleId)
	}

	if rule.Type == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyRuleType)
	}

	if rule.Confidence < 0 || rule.Confidence > 1 {
		return fmt.Errorf("%w: %w: %f", ErrInvalidRule, ErrConfidenceOutOfRange, rule.Confidence)
	}

	if rule.Weight < 0 {
		return fmt.Errorf("%w: %w: %f", ErrInvalidRule, ErrNegativeWeight, rule.Weight)
	}

	return nil
}

// ValidateTrainingRun validates a TrainingRun before archiving.
//
// Validation rules:
//   - Task must not be empty
//   - Counts must not be negative
//
// NOT validated (populated by the archive):
//   - Id (empty until the archive assigns a ULID)
//   - CreatedAt (set on insert if zero)
func ValidateTrainingRun(run *TrainingRun) error {
	if run == nil {
		return fmt.Errorf("%w: run is nil", ErrInvalidTrainingRun)
	}

	if run.Task == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTrainingRun, ErrEmptyRunTask)
	}

	if run.ConceptCount < 0 || run.ExampleCount < 0 || run.RuleCount < 0 {
		return fmt.Errorf("%w: counts cannot be negative", ErrInvalidTrainingRun)
	}

	return nil
}
