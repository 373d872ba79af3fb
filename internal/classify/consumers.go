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

package classify

import (
	"go/types"
)

// consumers maps fully qualified functions known to exhaust a single-pass
// argument to the index of the consumed argument.
//
// The whitelist is a fixed, documented heuristic: classification never
// simulates the code, so calls outside this table are not treated as
// consuming even when they are.
var consumers = map[string]int{
	"io.Copy":                 1,
	"io.ReadAll":              0,
	"maps.Collect":            0,
	"slices.Collect":          0,
	"slices.Max":              0,
	"slices.Min":              0,
	"slices.Sorted":           0,
	"slices.SortedFunc":       0,
	"slices.SortedStableFunc": 0,
}

// materializers is the subset of consuming calls whose result is an ordinary
// re-iterable container. A value rebound through one of these is considered
// defensively converted.
var materializers = map[string]bool{
	"io.ReadAll":              true,
	"maps.Collect":            true,
	"slices.Collect":          true,
	"slices.Sorted":           true,
	"slices.SortedFunc":       true,
	"slices.SortedStableFunc": true,
}

// consumedArg returns the consumed argument index for a callee name.
func consumedArg(name string) (int, bool) {
	i, ok := consumers[name]

	return i, ok
}

// SinglePass reports whether the type is a known one-shot producer: the
// iterator function types from package iter (or any function of that shape)
// and reader-shaped interfaces.
//
// This is a best-effort static distinction between re-iterable containers
// and single-pass sequences, not a type-soundness judgment.
func SinglePass(t types.Type) bool {
	if named, ok := types.Unalias(t).(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "iter" {
			switch obj.Name() {
			case "Seq", "Seq2":
				return true
			}
		}
	}

	switch u := t.Underlying().(type) {
	case *types.Signature:
		return isYieldSignature(u)

	case *types.Interface:
		return isReaderShaped(u)

	default:
		return false
	}
}

// isYieldSignature matches func(yield func(…) bool), the push-iterator shape.
func isYieldSignature(sig *types.Signature) bool {
	if sig.Params().Len() != 1 || sig.Results().Len() != 0 {
		return false
	}

	yield, ok := sig.Params().At(0).Type().Underlying().(*types.Signature)
	if !ok || yield.Results().Len() != 1 {
		return false
	}

	basic, ok := yield.Results().At(0).Type().Underlying().(*types.Basic)

	return ok && basic.Kind() == types.Bool
}

// isReaderShaped matches interfaces carrying Read(p []byte) (n int, err error).
func isReaderShaped(iface *types.Interface) bool {
	for m := range iface.NumMethods() {
		fn := iface.Method(m)
		if fn.Name() != "Read" {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 2 {
			continue
		}

		if slice, ok := sig.Params().At(0).Type().Underlying().(*types.Slice); ok {
			if basic, ok := slice.Elem().Underlying().(*types.Basic); ok && basic.Kind() == types.Byte {
				return true
			}
		}
	}

	return false
}
