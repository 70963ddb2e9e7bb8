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


// Package embed turns a concept vocabulary into a concept→vector
// mapping using a capability-selected encoder. The whole concept list
// is encoded as a single batch; repeated concepts collapse with
// last-occurrence-wins map semantics.
//
// Fine-tuning is declared but intentionally unimplemented: FineTune
// validates the required capabilities and returns an explicit
// "not performed" result so callers cannot mistake the no-op for a
// completed training step.
package embed
