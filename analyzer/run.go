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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopguard/internal/astutil"
	"fillmore-labs.com/loopguard/internal/catalog"
	"fillmore-labs.com/loopguard/internal/classify"
	"fillmore-labs.com/loopguard/internal/config"
	"fillmore-labs.com/loopguard/internal/match"
	"fillmore-labs.com/loopguard/internal/model"
	"fillmore-labs.com/loopguard/internal/report"
	"fillmore-labs.com/loopguard/internal/scopes"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the loopguard analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("loopguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LoopGuard")
	defer task.End()

	rules := catalog.Enabled(r.rules, r.maxTier)
	cfg := match.Config{
		RebindHops:     r.rebindHops,
		StrictMutation: r.behavior.Enabled(config.StrictMutation),
	}

	// Findings accumulate per file and are rendered in one batch, so
	// duplicates collapse and ordering is stable across the whole file.
	var (
		currentFile astutil.CurrentFile
		findings    []model.Finding
	)

	flush := func() {
		if !currentFile.Valid() || len(findings) == 0 {
			findings = findings[:0]

			return
		}

		report.Emit(ctx, p, currentFile, report.Render(p.Fset, findings))
		findings = findings[:0]
	}

	// Loop over all function and method declarations
	root, types := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
	}

	root.Inspect(types, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			flush()
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			descend := r.behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

			return descend

		case *ast.FuncDecl:
			if node.Body == nil {
				return false
			}

			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Function declaration %s without file info", node.Name.Name)

				return false
			}

			// Skip functions with nolint comment
			if node.Doc != nil && astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1]) {
				return false
			}

			// Stage 1: build the scope and usage model of the function
			m := scopes.Build(ctx, p.TypesInfo, node)

			// Stage 2: classify uses and link structural patterns
			classify.Apply(ctx, p.TypesInfo, m)

			// Stage 3: run the enabled rule matchers
			findings = append(findings, match.Run(m, rules, cfg)...)

			return true

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	flush()

	return nil, nil
}
