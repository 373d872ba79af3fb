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

package analyzer

import (
	"fillmore-labs.com/loopguard/internal/config"
	"fillmore-labs.com/loopguard/internal/model"
)

// runOptions represent configuration runOptions for the loopguard analyzer.
type runOptions struct {
	// rules selects the enabled rule matchers.
	rules config.Rules

	// behavior holds behavioral options.
	behavior config.Behavior

	// maxTier is the highest rule tier that is reported.
	maxTier model.Tier

	// rebindHops is the number of plain alias rebinds followed when
	// attributing consuming uses of a single-pass value.
	rebindHops int
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		rules:      config.NewBitMask(config.AllRules),
		behavior:   config.NewBitMask[config.Config](),
		maxTier:    model.Tier3,
		rebindHops: 1,
	}
}
