// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

// RuleFlags selects individual rule matchers.
// A disabled rule's matcher is never invoked, rather than invoked with its
// findings discarded.
type RuleFlags uint8

const (
	// ReiterRule enables detection of single-pass values consumed more than once.
	ReiterRule RuleFlags = 1 << iota

	// StaleLoopRule enables detection of loop-captured variables read after the loop.
	StaleLoopRule

	// PairwiseRule enables detection of manual parallel indexing over multiple containers.
	PairwiseRule

	// DoubleLookupRule enables detection of redundant map membership checks before access.
	DoubleLookupRule

	// AllRules enables every rule matcher.
	AllRules = ReiterRule | StaleLoopRule | PairwiseRule | DoubleLookupRule
)

// Rules is a bitmask over [RuleFlags].
type Rules = BitMask[RuleFlags]

// Config represents behavioral options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// StrictMutation treats any call receiving a map as a potential mutation
	// when pairing membership tests with subsequent accesses.
	StrictMutation
)

// Behavior is a bitmask over [Config].
type Behavior = BitMask[Config]
