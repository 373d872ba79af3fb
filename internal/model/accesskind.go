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

package model

//go:generate go tool stringer -type=AccessKind,BindKind,Tier -output=kind_string.go

// AccessKind classifies how a use consumes its binding's value.
//
// The classification is purely structural. It is derived from syntactic shape
// plus a fixed whitelist of known single-pass-consuming operations, not from
// a soundness judgment; unusual code shapes may be under- or over-classified.
type AccessKind uint8

const (
	// PlainRead is any read not covered by a more specific kind.
	PlainRead AccessKind = iota

	// FullConsumingIteration marks a use as the iteration source of a range
	// statement or as the consumed argument of a known exhausting call.
	FullConsumingIteration

	// IndexedAccess marks a container subscripted by the control variable of
	// an enclosing len-shaped counting loop.
	IndexedAccess

	// MembershipTest marks the container operand of a comma-ok existence
	// check, and the linked subscript access it guards.
	MembershipTest

	// Rebind marks an assignment target.
	Rebind
)

// Tier is the severity grouping of a rule. Lower tiers carry higher impact;
// a run's tier filter drops rules above the configured maximum.
type Tier uint8

const (
	// Tier1 rules flag likely correctness bugs.
	Tier1 Tier = iota + 1

	// Tier2 rules flag readability and performance hazards.
	Tier2

	// Tier3 rules flag stylistic improvements.
	Tier3
)
