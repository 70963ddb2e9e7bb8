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


// Package ai provides abstractions for the encoding services used by the
// trainer.
//
// The central interface is Encoder, a capability-checked strategy: the
// trainer selects one implementation at startup and the pipelines never
// check availability again. Two variants exist:
//
//   - ai/openai: production encoder backed by an OpenAI-compatible
//     embedding API
//   - NullEncoder: deterministic pseudo-random fallback used when no
//     encoding service can be reached
//
// Falling back to the NullEncoder is a documented quality degradation,
// not an error: the trainer still produces a complete artifact set, and
// the Capabilities report tells the caller which mode was active.
//
// TrainingBackend models the numeric backend that fine-tuning would
// require. No implementation ships in this build; the interface exists so
// the fine-tune operation can report an honest "not performed" status
// instead of silently succeeding.
//
// The ai/mock sub-package contains test doubles for unit testing without
// external services.
package ai
