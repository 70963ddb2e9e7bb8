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


// Package storage defines the training-run archive abstraction and its
// binary serialization helpers. The archive is optional provenance
// storage: the JSON artifact files remain the pipeline outputs, and the
// archive never mutates them.
//
// The storage/badger sub-package provides the BadgerDB implementation.
package storage
