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

package config_test

import (
	"testing"

	. "fillmore-labs.com/loopguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(ReiterRule, PairwiseRule)

	if !b.Enabled(ReiterRule) || !b.Enabled(PairwiseRule) {
		t.Error("Expected initial flags to be enabled")
	}

	if b.Enabled(StaleLoopRule) {
		t.Error("Expected unset flag to be disabled")
	}

	b.Disable(ReiterRule)
	if b.Enabled(ReiterRule) {
		t.Error("Expected disabled flag to be off")
	}

	b.Set(StaleLoopRule, true)
	if !b.Enabled(StaleLoopRule) {
		t.Error("Expected set flag to be on")
	}

	b.Set(StaleLoopRule, false)
	if b.Enabled(StaleLoopRule) {
		t.Error("Expected cleared flag to be off")
	}
}

func TestBitMaskAllRules(t *testing.T) {
	t.Parallel()

	b := NewBitMask(AllRules)

	for _, flag := range []RuleFlags{ReiterRule, StaleLoopRule, PairwiseRule, DoubleLookupRule} {
		if !b.Enabled(flag) {
			t.Errorf("Expected flag %b to be enabled by AllRules", flag)
		}
	}
}
