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


package rulesmith

import "github.com/poiesic/rulesmith/core"

// DefaultConcepts is the built-in concept list used when no concepts
// file is supplied.
func DefaultConcepts() []string {
	return []string{
		"neural network", "symbolic logic", "tensor", "embedding",
		"reasoning", "learning", "inference", "knowledge",
	}
}

// DefaultExamples is the built-in labeled example batch used when no
// examples file is supplied.
func DefaultExamples() []core.Example {
	return []core.Example{
		{Premise: []string{"if", "rain"}, Conclusion: []string{"wet"}},
		{Premise: []string{"if", "snow"}, Conclusion: []string{"cold"}},
		{Premise: []string{"neural", "network"}, Conclusion: []string{"learn"}},
		{Premise: []string{"symbolic", "logic"}, Conclusion: []string{"reason"}},
	}
}
