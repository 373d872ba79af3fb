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

// Package classify tags the uses of a scope model with access kinds.
//
// Classification is purely structural: syntactic shape plus fixed whitelists
// of consuming and materializing operations. It runs after the scope builder
// and before the rule matchers, in priority order: consuming iterations
// first, then paired index accesses, then membership tests; everything else
// stays a plain read.
package classify

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/loopguard/internal/model"
)

// Apply annotates the model in place.
func Apply(ctx context.Context, info *types.Info, m *model.FuncModel) {
	defer trace.StartRegion(ctx, "Classify").End()

	c := classifier{info: info, m: m}

	c.markParameters()
	c.resolveSources()
	c.markRangeSources()
	c.markConsumingCalls()
	c.collectIndexLoops()
	c.collectMembershipPairs()
	c.collectMapWrites()
}

type classifier struct {
	info *types.Info
	m    *model.FuncModel
}

// markParameters records which parameters have single-pass types.
func (c *classifier) markParameters() {
	for i := range c.m.Bindings {
		b := &c.m.Bindings[i]
		if b.Kind == model.BindParameter {
			b.SinglePass = SinglePass(b.Var.Type())
		}
	}
}

// resolveSources fills alias and materialization links on binding events.
func (c *classifier) resolveSources() {
	for i := range c.m.Bindings {
		b := &c.m.Bindings[i]
		if b.RHS == nil {
			continue
		}

		switch rhs := ast.Unparen(b.RHS).(type) {
		case *ast.Ident:
			if v, ok := c.info.Uses[rhs].(*types.Var); ok {
				b.Source = v
			}

		case *ast.CallExpr:
			name, arg := c.callee(rhs)
			if !materializers[name] || arg >= len(rhs.Args) {
				break
			}

			if id, ok := ast.Unparen(rhs.Args[arg]).(*ast.Ident); ok {
				if v, ok := c.info.Uses[id].(*types.Var); ok {
					b.Source = v
					b.Materialized = true
				}
			}
		}
	}
}

// callee resolves a call to its qualified name and consumed argument index.
func (c *classifier) callee(call *ast.CallExpr) (string, int) {
	fn := typeutil.Callee(c.info, call)
	f, ok := fn.(*types.Func)
	if !ok || f.Pkg() == nil {
		return "", 0
	}

	name := f.Pkg().Path() + "." + f.Name()
	if arg, ok := consumedArg(name); ok {
		return name, arg
	}

	return "", 0
}

// markRangeSources tags the iteration source of every range statement.
func (c *classifier) markRangeSources() {
	for i := range c.m.Loops {
		r, ok := c.m.Loops[i].Stmt.(*ast.RangeStmt)
		if !ok {
			continue
		}

		id, ok := ast.Unparen(r.X).(*ast.Ident)
		if !ok {
			continue
		}

		c.tag(id, model.FullConsumingIteration)
	}
}

// markConsumingCalls tags arguments of whitelisted exhausting calls.
func (c *classifier) markConsumingCalls() {
	if c.m.Decl.Body == nil {
		return
	}

	ast.Inspect(c.m.Decl.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		name, arg := c.callee(call)
		if name == "" || arg >= len(call.Args) {
			return true
		}

		if id, ok := ast.Unparen(call.Args[arg]).(*ast.Ident); ok {
			c.tag(id, model.FullConsumingIteration)
		}

		return true
	})
}

// tag upgrades the recorded use of an identifier from a plain read.
func (c *classifier) tag(id *ast.Ident, kind model.AccessKind) int {
	i, ok := c.m.UseOf(id)
	if !ok {
		return -1
	}

	if c.m.Uses[i].Kind == model.PlainRead {
		c.m.Uses[i].Kind = kind
	}

	return i
}

// collectIndexLoops finds loops of the shape
//
//	for i := 0; i < len(src); i++
//
// and the containers their bodies subscript with the control variable.
func (c *classifier) collectIndexLoops() {
	for li := range c.m.Loops {
		f, ok := c.m.Loops[li].Stmt.(*ast.ForStmt)
		if !ok {
			continue
		}

		ivar, source := c.lenShapedHeader(f)
		if ivar == nil {
			continue
		}

		il := model.IndexLoop{Loop: model.LoopIndex(li), IndexVar: ivar, Source: source}

		ast.Inspect(f.Body, func(n ast.Node) bool {
			ix, ok := n.(*ast.IndexExpr)
			if !ok {
				return true
			}

			base, ok := ast.Unparen(ix.X).(*ast.Ident)
			if !ok {
				return true
			}

			index, ok := ast.Unparen(ix.Index).(*ast.Ident)
			if !ok || c.info.Uses[index] != ivar {
				return true
			}

			if i := c.tag(base, model.IndexedAccess); i >= 0 && !c.m.Uses[i].InFuncLit {
				if v, ok := c.info.Uses[base].(*types.Var); ok {
					il.Containers = appendDistinct(il.Containers, v)
				}
			}

			return true
		})

		if len(il.Containers) > 0 {
			c.m.IndexLoops = append(c.m.IndexLoops, il)
		}
	}
}

// lenShapedHeader matches the counting header and returns the control
// variable and the measured container.
func (c *classifier) lenShapedHeader(f *ast.ForStmt) (*types.Var, *types.Var) {
	init, ok := f.Init.(*ast.AssignStmt)
	if !ok || init.Tok != token.DEFINE || len(init.Lhs) != 1 || len(init.Rhs) != 1 {
		return nil, nil
	}

	iid, ok := init.Lhs[0].(*ast.Ident)
	if !ok {
		return nil, nil
	}

	if lit, ok := ast.Unparen(init.Rhs[0]).(*ast.BasicLit); !ok || lit.Value != "0" {
		return nil, nil
	}

	ivar, ok := c.info.Defs[iid].(*types.Var)
	if !ok {
		return nil, nil
	}

	cond, ok := f.Cond.(*ast.BinaryExpr)
	if !ok || cond.Op != token.LSS {
		return nil, nil
	}

	if x, ok := ast.Unparen(cond.X).(*ast.Ident); !ok || c.info.Uses[x] != ivar {
		return nil, nil
	}

	lenCall, ok := ast.Unparen(cond.Y).(*ast.CallExpr)
	if !ok || len(lenCall.Args) != 1 {
		return nil, nil
	}

	if fn, ok := ast.Unparen(lenCall.Fun).(*ast.Ident); !ok || fn.Name != "len" {
		return nil, nil
	}

	post, ok := f.Post.(*ast.IncDecStmt)
	if !ok || post.Tok != token.INC {
		return nil, nil
	}

	if x, ok := ast.Unparen(post.X).(*ast.Ident); !ok || c.info.Uses[x] != ivar {
		return nil, nil
	}

	var source *types.Var
	if sid, ok := ast.Unparen(lenCall.Args[0]).(*ast.Ident); ok {
		source, _ = c.info.Uses[sid].(*types.Var)
	}

	return ivar, source
}

// collectMembershipPairs links comma-ok existence checks with subscript
// accesses of the same map and key in the guarded branch. Both the init
// form and the adjacent-statement form are recognized.
func (c *classifier) collectMembershipPairs() {
	if c.m.Decl.Body == nil {
		return
	}

	ast.Inspect(c.m.Decl.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.IfStmt:
			if assign, ok := n.Init.(*ast.AssignStmt); ok {
				c.linkPair(assign, n)
			}

		case *ast.BlockStmt:
			c.linkAdjacent(n.List)

		case *ast.CaseClause:
			c.linkAdjacent(n.Body)

		case *ast.CommClause:
			c.linkAdjacent(n.Body)
		}

		return true
	})
}

// linkAdjacent recognizes a membership test immediately followed by its
// guarding if statement.
func (c *classifier) linkAdjacent(stmts []ast.Stmt) {
	for i := 0; i+1 < len(stmts); i++ {
		assign, ok := stmts[i].(*ast.AssignStmt)
		if !ok {
			continue
		}

		ifStmt, ok := stmts[i+1].(*ast.IfStmt)
		if !ok || ifStmt.Init != nil {
			continue
		}

		c.linkPair(assign, ifStmt)
	}
}

// linkPair validates the test shape and records the membership pair.
func (c *classifier) linkPair(assign *ast.AssignStmt, ifStmt *ast.IfStmt) {
	base, key, okVar := c.membershipTest(assign)
	if base == nil {
		return
	}

	negated, ok := c.condOn(ifStmt.Cond, okVar)
	if !ok {
		return
	}

	mapVar, ok := c.info.Uses[base].(*types.Var)
	if !ok {
		return
	}

	testUse := c.tag(base, model.MembershipTest)
	if testUse < 0 {
		return
	}

	pair := model.MembershipPair{
		Map:       mapVar,
		Key:       key,
		TestUse:   testUse,
		Negated:   negated,
		TestEnd:   assign.End(),
		BranchEnd: ifStmt.Body.End(),
	}

	if !negated {
		c.scanGuardedBranch(&pair, ifStmt.Body)
	}

	c.m.Pairs = append(c.m.Pairs, pair)
}

// membershipTest matches `_, ok := m[k]` and returns the container
// identifier, the canonical key text and the ok variable.
func (c *classifier) membershipTest(assign *ast.AssignStmt) (*ast.Ident, string, *types.Var) {
	if len(assign.Lhs) != 2 || len(assign.Rhs) != 1 {
		return nil, "", nil
	}

	if blank, ok := assign.Lhs[0].(*ast.Ident); !ok || blank.Name != "_" {
		return nil, "", nil
	}

	okID, ok := assign.Lhs[1].(*ast.Ident)
	if !ok {
		return nil, "", nil
	}

	okVar := c.objectOf(okID)
	if okVar == nil {
		return nil, "", nil
	}

	ix, ok := ast.Unparen(assign.Rhs[0]).(*ast.IndexExpr)
	if !ok || !c.isMapBase(ix) {
		return nil, "", nil
	}

	base, ok := ast.Unparen(ix.X).(*ast.Ident)
	if !ok {
		return nil, "", nil
	}

	return base, types.ExprString(ix.Index), okVar
}

// condOn matches a bare `ok` or `!ok` condition on the given variable.
func (c *classifier) condOn(cond ast.Expr, okVar *types.Var) (negated, ok bool) {
	switch e := ast.Unparen(cond).(type) {
	case *ast.Ident:
		return false, c.info.Uses[e] == okVar

	case *ast.UnaryExpr:
		if e.Op != token.NOT {
			return false, false
		}

		id, isIdent := ast.Unparen(e.X).(*ast.Ident)

		return true, isIdent && c.info.Uses[id] == okVar

	default:
		return false, false
	}
}

// scanGuardedBranch collects same-key accesses and insertions in the branch
// taken when the key is present.
func (c *classifier) scanGuardedBranch(pair *model.MembershipPair, branch *ast.BlockStmt) {
	// Subscripts that are plain assignment targets overwrite the slot
	// instead of reading it.
	writes := make(map[*ast.IndexExpr]bool)

	ast.Inspect(branch, func(n ast.Node) bool {
		if assign, ok := n.(*ast.AssignStmt); ok && assign.Tok == token.ASSIGN {
			for _, lhs := range assign.Lhs {
				if ix, ok := ast.Unparen(lhs).(*ast.IndexExpr); ok {
					writes[ix] = true
				}
			}
		}

		return true
	})

	ast.Inspect(branch, func(n ast.Node) bool {
		ix, ok := n.(*ast.IndexExpr)
		if !ok {
			return true
		}

		base, ok := ast.Unparen(ix.X).(*ast.Ident)
		if !ok || c.info.Uses[base] != pair.Map || types.ExprString(ix.Index) != pair.Key {
			return true
		}

		if writes[ix] {
			pair.Inserts = true

			return true
		}

		if i := c.tag(base, model.MembershipTest); i >= 0 {
			pair.AccessUses = append(pair.AccessUses, i)
		}

		return true
	})
}

// collectMapWrites records mutation sites of map variables: subscript
// stores, deletes, and calls receiving a map (counted in strict mode only).
func (c *classifier) collectMapWrites() {
	if c.m.Decl.Body == nil {
		return
	}

	ast.Inspect(c.m.Decl.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				ix, ok := ast.Unparen(lhs).(*ast.IndexExpr)
				if !ok || !c.isMapBase(ix) {
					continue
				}

				if v := c.baseVar(ix); v != nil {
					c.m.MapWrites = append(c.m.MapWrites, model.MapWrite{Map: v, Pos: n.Pos()})
				}
			}

		case *ast.CallExpr:
			c.collectCallWrites(n)
		}

		return true
	})
}

// collectCallWrites records deletes and map-valued call arguments.
func (c *classifier) collectCallWrites(call *ast.CallExpr) {
	if fn, ok := ast.Unparen(call.Fun).(*ast.Ident); ok && fn.Name == "delete" && len(call.Args) > 0 {
		if id, ok := ast.Unparen(call.Args[0]).(*ast.Ident); ok {
			if v, ok := c.info.Uses[id].(*types.Var); ok {
				c.m.MapWrites = append(c.m.MapWrites, model.MapWrite{Map: v, Pos: call.Pos()})

				return
			}
		}
	}

	for _, arg := range call.Args {
		id, ok := ast.Unparen(arg).(*ast.Ident)
		if !ok {
			continue
		}

		v, ok := c.info.Uses[id].(*types.Var)
		if !ok || !isMapType(v.Type()) {
			continue
		}

		c.m.MapWrites = append(c.m.MapWrites, model.MapWrite{Map: v, Pos: call.Pos(), Call: true})
	}
}

// objectOf resolves an identifier from either the defining or using side.
func (c *classifier) objectOf(id *ast.Ident) *types.Var {
	if v, ok := c.info.Defs[id].(*types.Var); ok {
		return v
	}

	if v, ok := c.info.Uses[id].(*types.Var); ok {
		return v
	}

	return nil
}

// isMapBase reports whether the subscript operates on a map.
func (c *classifier) isMapBase(ix *ast.IndexExpr) bool {
	t := c.info.TypeOf(ix.X)

	return t != nil && isMapType(t)
}

// baseVar resolves the subscript base to a variable, or nil.
func (c *classifier) baseVar(ix *ast.IndexExpr) *types.Var {
	id, ok := ast.Unparen(ix.X).(*ast.Ident)
	if !ok {
		return nil
	}

	v, _ := c.info.Uses[id].(*types.Var)

	return v
}

// isMapType reports whether the type's underlying form is a map.
func isMapType(t types.Type) bool {
	_, ok := t.Underlying().(*types.Map)

	return ok
}

// appendDistinct appends v unless already present.
func appendDistinct(vars []*types.Var, v *types.Var) []*types.Var {
	for _, have := range vars {
		if have == v {
			return vars
		}
	}

	return append(vars, v)
}
