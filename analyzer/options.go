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
	"log/slog"

	"fillmore-labs.com/loopguard/internal/config"
	"fillmore-labs.com/loopguard/internal/model"
)

// Option configures specific behavior of a [New] loopguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithReiter is an [Option] to configure whether single-pass consumption checks are enabled.
func WithReiter(reiter bool) Option { return reiterOption{reiter: reiter} }

type reiterOption struct{ reiter bool }

func (o reiterOption) apply(r *runOptions) {
	r.rules.Set(config.ReiterRule, o.reiter)
}

func (o reiterOption) LogAttr() slog.Attr {
	return slog.Bool("reiter", o.reiter)
}

// WithStaleLoop is an [Option] to configure whether post-loop variable checks are enabled.
func WithStaleLoop(staleLoop bool) Option { return staleLoopOption{staleLoop: staleLoop} }

type staleLoopOption struct{ staleLoop bool }

func (o staleLoopOption) apply(r *runOptions) {
	r.rules.Set(config.StaleLoopRule, o.staleLoop)
}

func (o staleLoopOption) LogAttr() slog.Attr {
	return slog.Bool("staleloop", o.staleLoop)
}

// WithPairwise is an [Option] to configure whether parallel indexing checks are enabled.
func WithPairwise(pairwise bool) Option { return pairwiseOption{pairwise: pairwise} }

type pairwiseOption struct{ pairwise bool }

func (o pairwiseOption) apply(r *runOptions) {
	r.rules.Set(config.PairwiseRule, o.pairwise)
}

func (o pairwiseOption) LogAttr() slog.Attr {
	return slog.Bool("pairwise", o.pairwise)
}

// WithDoubleLookup is an [Option] to configure whether redundant map lookup checks are enabled.
func WithDoubleLookup(doubleLookup bool) Option { return doubleLookupOption{doubleLookup: doubleLookup} }

type doubleLookupOption struct{ doubleLookup bool }

func (o doubleLookupOption) apply(r *runOptions) {
	r.rules.Set(config.DoubleLookupRule, o.doubleLookup)
}

func (o doubleLookupOption) LogAttr() slog.Attr {
	return slog.Bool("doublelookup", o.doubleLookup)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithStrictMutation is an [Option] to count any call receiving a map as a
// mutation when validating membership-test pairs.
func WithStrictMutation(strict bool) Option { return strictMutationOption{strict: strict} }

type strictMutationOption struct{ strict bool }

func (o strictMutationOption) apply(r *runOptions) {
	r.behavior.Set(config.StrictMutation, o.strict)
}

func (o strictMutationOption) LogAttr() slog.Attr {
	return slog.Bool("strict-mutation", o.strict)
}

// WithTier is an [Option] to configure the highest reported rule tier.
// Values outside the defined tiers are clamped.
func WithTier(tier int) Option { return tierOption{tier: tier} }

type tierOption struct{ tier int }

func (o tierOption) apply(r *runOptions) {
	r.maxTier = clampTier(o.tier)
}

func (o tierOption) LogAttr() slog.Attr {
	return slog.Int("tier", o.tier)
}

func clampTier(tier int) model.Tier {
	switch {
	case tier < int(model.Tier1):
		return model.Tier1

	case tier > int(model.Tier3):
		return model.Tier3

	default:
		return model.Tier(tier)
	}
}

// WithRebindHops is an [Option] to configure how many plain alias rebinds
// are followed when attributing consuming uses of a single-pass value.
func WithRebindHops(hops int) Option { return rebindHopsOption{hops: hops} }

type rebindHopsOption struct{ hops int }

func (o rebindHopsOption) apply(r *runOptions) {
	if o.hops >= 0 {
		r.rebindHops = o.hops
	}
}

func (o rebindHopsOption) LogAttr() slog.Attr {
	return slog.Int("rebind-hops", o.hops)
}
