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

package classify_test

import (
	"context"
	"testing"

	. "fillmore-labs.com/loopguard/internal/classify"
	"fillmore-labs.com/loopguard/internal/model"
	"fillmore-labs.com/loopguard/internal/scopes"
	"fillmore-labs.com/loopguard/internal/testsource"
)

// classifyFunc type-checks a single-function source, builds its scope model
// and runs the classifier over it.
func classifyFunc(t *testing.T, src string) *model.FuncModel {
	t.Helper()

	fset, f, fn := testsource.ParseFunc(t, src)
	_, info := testsource.Check(t, fset, f)

	ctx := context.Background()
	m := scopes.Build(ctx, info, fn)
	Apply(ctx, info, m)

	return m
}

func TestMembershipPair(t *testing.T) {
	t.Parallel()

	const src = `package p

func g(m map[string]int, k string) int {
	if _, ok := m[k]; ok {
		return m[k]
	}
	return 0
}
`

	fm := classifyFunc(t, src)

	if len(fm.Pairs) != 1 {
		t.Fatalf("Got %d pairs, want 1", len(fm.Pairs))
	}

	pair := fm.Pairs[0]

	if pair.Negated {
		t.Error("Expected a positive membership test")
	}

	if pair.Key != "k" {
		t.Errorf("Got key %q, want %q", pair.Key, "k")
	}

	if len(pair.AccessUses) != 1 {
		t.Fatalf("Got %d guarded accesses, want 1", len(pair.AccessUses))
	}

	if kind := fm.Uses[pair.TestUse].Kind; kind != model.MembershipTest {
		t.Errorf("Test use kind = %v, want %v", kind, model.MembershipTest)
	}
}

func TestNegatedPair(t *testing.T) {
	t.Parallel()

	const src = `package p

func g(m map[string]int, k string) {
	if _, ok := m[k]; !ok {
		m[k] = 1
	}
}
`

	fm := classifyFunc(t, src)

	if len(fm.Pairs) != 1 {
		t.Fatalf("Got %d pairs, want 1", len(fm.Pairs))
	}

	if !fm.Pairs[0].Negated {
		t.Error("Expected a negated membership test")
	}

	if len(fm.Pairs[0].AccessUses) != 0 {
		t.Errorf("Got %d guarded accesses, want none", len(fm.Pairs[0].AccessUses))
	}
}

func TestIndexLoop(t *testing.T) {
	t.Parallel()

	const src = `package p

func h(dst, src []int) {
	for i := 0; i < len(src); i++ {
		dst[i] = src[i]
	}
}
`

	fm := classifyFunc(t, src)

	if len(fm.IndexLoops) != 1 {
		t.Fatalf("Got %d index loops, want 1", len(fm.IndexLoops))
	}

	il := fm.IndexLoops[0]

	if il.IndexVar.Name() != "i" {
		t.Errorf("Got index variable %q, want %q", il.IndexVar.Name(), "i")
	}

	if il.Source == nil || il.Source.Name() != "src" {
		t.Errorf("Got source %v, want src", il.Source)
	}

	if len(il.Containers) != 2 {
		t.Errorf("Got %d containers, want 2", len(il.Containers))
	}
}

func TestRangeSource(t *testing.T) {
	t.Parallel()

	const src = `package p

func r(xs []int) int {
	total := 0
	for _, v := range xs {
		total += v
	}
	return total
}
`

	fm := classifyFunc(t, src)

	found := false

	for i := range fm.Uses {
		u := &fm.Uses[i]
		if u.Var.Name() == "xs" && u.Kind == model.FullConsumingIteration {
			found = true
		}
	}

	if !found {
		t.Error("Expected the range source to be tagged as a consuming iteration")
	}
}

func TestMapWrites(t *testing.T) {
	t.Parallel()

	const src = `package p

func w(m map[string]int, k string) {
	delete(m, k)
	m[k] = 0
}
`

	fm := classifyFunc(t, src)

	if len(fm.MapWrites) != 2 {
		t.Fatalf("Got %d map writes, want 2", len(fm.MapWrites))
	}

	for _, w := range fm.MapWrites {
		if w.Call {
			t.Errorf("Write at %v marked as call-only", w.Pos)
		}
	}
}
