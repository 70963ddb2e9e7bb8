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


// Package induct mines inductive logical rules from labeled
// premise/conclusion examples.
//
// The pipeline is a pure batch transform with four stages:
//
//  1. Canonicalize: each example maps to a pattern key built from its
//     premise and conclusion treated as sets (lexicographically sorted,
//     order- and duplicate-insensitive).
//  2. Count: occurrences per pattern key, keeping the first-seen
//     premise/conclusion lists verbatim as the representative.
//  3. Score: confidence = min(1.0, (count/N) * 1.5), N being the total
//     number of input examples.
//  4. Filter and rank: drop patterns below the confidence threshold,
//     assign sequential ids in discovery order, stable-sort by
//     confidence descending, truncate to the rule cap.
//
// There is no error path. Malformed examples degrade to empty sets, an
// empty input yields an empty rule list, and over-tight thresholds
// simply yield fewer rules.
package induct
