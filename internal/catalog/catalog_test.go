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

package catalog_test

import (
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/loopguard/internal/catalog"
	"fillmore-labs.com/loopguard/internal/config"
	"fillmore-labs.com/loopguard/internal/model"
)

func TestDefaultOrdered(t *testing.T) {
	t.Parallel()

	entries := Default()
	if len(entries) != 4 {
		t.Fatalf("Got %d entries, want 4", len(entries))
	}

	sorted := slices.IsSortedFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Code, b.Code)
	})
	if !sorted {
		t.Error("Expected entries ordered by code")
	}

	for _, e := range entries {
		if e.Matcher == nil {
			t.Errorf("Entry %s has no matcher", e.Code)
		}

		if e.Ref == "" {
			t.Errorf("Entry %s has no reference", e.Code)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	e, ok := Lookup(Reiter)
	if !ok {
		t.Fatal("Expected to find the reiter entry")
	}

	if e.Tier != model.Tier1 {
		t.Errorf("Got tier %v, want %v", e.Tier, model.Tier1)
	}

	if _, ok := Lookup("unknown"); ok {
		t.Error("Expected unknown code to be absent")
	}
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   config.RuleFlags
		maxTier model.Tier
		want    int
	}{
		{name: "All", flags: config.AllRules, maxTier: model.Tier3, want: 4},
		{name: "Tier1", flags: config.AllRules, maxTier: model.Tier1, want: 2},
		{name: "Single", flags: config.PairwiseRule, maxTier: model.Tier3, want: 1},
		{name: "SingleCapped", flags: config.PairwiseRule, maxTier: model.Tier1, want: 0},
		{name: "None", flags: 0, maxTier: model.Tier3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rules := Enabled(config.NewBitMask(tt.flags), tt.maxTier)
			if len(rules) != tt.want {
				t.Errorf("Got %d rules, want %d", len(rules), tt.want)
			}
		})
	}
}
