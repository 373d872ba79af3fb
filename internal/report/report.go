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

// Package report renders rule findings into diagnostics.
//
// Rendering is a pure function of the findings and the file set: duplicates
// collapse on rule code and position, and the output is ordered by line,
// column and code. Running it twice over the same findings yields the same
// records.
package report

import (
	"context"
	"fmt"
	"go/token"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopguard/internal/astutil"
	"fillmore-labs.com/loopguard/internal/model"
)

// Record is one rendered diagnostic occurrence.
type Record struct {
	// Pos and End delimit the reported source range.
	Pos, End token.Pos

	// Line and Column locate Pos in the rendered file.
	Line, Column int

	// Code is the catalog identifier of the producing rule.
	Code string

	// Message is the fully formatted diagnostic text.
	Message string
}

type dedupKey struct {
	code string
	pos  token.Pos
}

// Render converts findings into ordered, duplicate-free records.
//
// Two findings with the same rule code and position collapse into one
// record. Records are ordered by line, then column, then code, so the
// output does not depend on matcher execution order.
func Render(fset *token.FileSet, findings []model.Finding) []Record {
	seen := make(map[dedupKey]bool, len(findings))
	records := make([]Record, 0, len(findings))

	for _, f := range findings {
		key := dedupKey{code: f.Code, pos: f.Pos}
		if seen[key] {
			continue
		}

		seen[key] = true

		position := fset.Position(f.Pos)

		records = append(records, Record{
			Pos:     f.Pos,
			End:     f.End,
			Line:    position.Line,
			Column:  position.Column,
			Code:    f.Code,
			Message: fmt.Sprintf("%s %s, see rule %s for the fix", f.Code, f.Detail, f.Code),
		})
	}

	slices.SortFunc(records, compareRecords)

	return records
}

func compareRecords(a, b Record) int {
	if a.Line != b.Line {
		return a.Line - b.Line
	}

	if a.Column != b.Column {
		return a.Column - b.Column
	}

	return strings.Compare(a.Code, b.Code)
}

// Emit reports the rendered records through the analysis pass, honoring
// nolint suppressions on the diagnosed line.
func Emit(ctx context.Context, p *analysis.Pass, current astutil.CurrentFile, records []Record) {
	if len(records) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "EmitDiagnostics").End()

	for _, r := range records {
		if current.NoLintComment(r.Pos) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      r.Pos,
			End:      r.End,
			Category: r.Code,
			Message:  r.Message,
		})
	}
}
