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


package storage

import (
	"github.com/poiesic/rulesmith/core"
)

// MarshalRule serializes a Rule to bytes.
func MarshalRule(rule *core.Rule) []byte {
	buf := make([]byte, core.RuleMUS.Size(*rule))
	core.RuleMUS.Marshal(*rule, buf)
	return buf
}

// UnmarshalRule deserializes a Rule from bytes.
func UnmarshalRule(data []byte) (*core.Rule, error) {
	rule, _, err := core.RuleMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// MarshalTrainingRun serializes a TrainingRun to bytes.
func MarshalTrainingRun(run *core.TrainingRun) []byte {
	buf := make([]byte, core.TrainingRunMUS.Size(*run))
	core.TrainingRunMUS.Marshal(*run, buf)
	return buf
}

// UnmarshalTrainingRun deserializes a TrainingRun from bytes.
func UnmarshalTrainingRun(data []byte) (*core.TrainingRun, error) {
	run, _, err := core.TrainingRunMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
