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

package gclplugin

import loopguard "fillmore-labs.com/loopguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Reiter enables checks for single-pass values consumed more than once.
	Reiter *bool `json:"reiter,omitzero"`
	// StaleLoop enables checks for loop-captured variables read after the loop.
	StaleLoop *bool `json:"staleloop,omitzero"`
	// Pairwise enables checks for manual parallel indexing over multiple containers.
	Pairwise *bool `json:"pairwise,omitzero"`
	// DoubleLookup enables checks for redundant map membership tests before access.
	DoubleLookup *bool `json:"doublelookup,omitzero"`
	// StrictMutation counts any call receiving a map as a mutation.
	StrictMutation *bool `json:"strict-mutation,omitzero"`
	// Tier sets the highest reported rule tier.
	Tier *int `json:"tier,omitzero"`
	// RebindHops sets the alias rebinds followed when tracking single-pass values.
	RebindHops *int `json:"rebind-hops,omitzero"`
}

// Options converts [Settings] into a list of [loopguard.Option] for the loopguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []loopguard.Option {
	var opts []loopguard.Option

	opts = appendOption(opts, s.Reiter, loopguard.WithReiter)
	opts = appendOption(opts, s.StaleLoop, loopguard.WithStaleLoop)
	opts = appendOption(opts, s.Pairwise, loopguard.WithPairwise)
	opts = appendOption(opts, s.DoubleLookup, loopguard.WithDoubleLookup)
	opts = appendOption(opts, s.StrictMutation, loopguard.WithStrictMutation)
	opts = appendOption(opts, s.Tier, loopguard.WithTier)
	opts = appendOption(opts, s.RebindHops, loopguard.WithRebindHops)

	return opts
}

// appendOption appends a non-nil setting to a [loopguard.Option] list.
func appendOption[T any](opts []loopguard.Option, value *T, constructor func(T) loopguard.Option) []loopguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
