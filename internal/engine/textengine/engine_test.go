package textengine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"morph/internal/dialect"
	"morph/internal/engine"
	"morph/internal/pipeline"
	"morph/internal/stage"
)

func transform(t *testing.T, src, path string, flags dialect.Flags) engine.Result {
	t.Helper()
	spec, err := pipeline.Assemble(flags, nil, nil)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	res, err := New(nil).Transform(context.Background(), engine.Request{
		Source: src, Path: path, Pipeline: spec,
	})
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	return res
}

func TestTransform_StyleImportElision(t *testing.T) {
	src := "import \"x.css\";\nimport {a} from \"./a\";\n"
	res := transform(t, src, "a.js", dialect.Flags{Module: false})

	if strings.Contains(res.Code, "x.css") {
		t.Errorf("style import survived:\n%s", res.Code)
	}
	if want := "const { a } = require(\"./a\")"; !strings.Contains(res.Code, want) {
		t.Errorf("output missing %q:\n%s", want, res.Code)
	}
}

func TestTransform_ExportAssignRewrite(t *testing.T) {
	src := "export = foo(1, 2)\n"
	res := transform(t, src, "a.ts", dialect.Flags{Typed: true})

	if want := "module.exports = foo(1, 2)"; !strings.Contains(res.Code, want) {
		t.Errorf("output missing %q:\n%s", want, res.Code)
	}
	if strings.Contains(res.Code, "export =") {
		t.Errorf("residual assignment export:\n%s", res.Code)
	}
}

func TestTransform_ImportForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "bare",
			src:  `import "./setup";`,
			want: `require("./setup")`,
		},
		{
			name: "default",
			src:  `import React from "react";`,
			want: `const React = require("react")`,
		},
		{
			name: "namespace",
			src:  `import * as path from "path";`,
			want: `const path = require("path")`,
		},
		{
			name: "named with alias",
			src:  `import { join, sep as separator } from "path";`,
			want: `const { join, sep: separator } = require("path")`,
		},
		{
			name: "default and named",
			src:  `import React, { useState } from "react";`,
			want: `const React = require("react"), { useState } = React`,
		},
		{
			name: "dynamic import",
			src:  `const mod = import("./lazy");`,
			want: `const mod = require("./lazy");`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := transform(t, tt.src+"\n", "a.js", dialect.Flags{})
			if !strings.Contains(res.Code, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, res.Code)
			}
		})
	}
}

func TestTransform_ExportForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "default",
			src:  `export default compute(1);`,
			want: `module.exports.default = compute(1)`,
		},
		{
			name: "const",
			src:  `export const answer = 42;`,
			want: `const answer = 42; module.exports.answer = answer`,
		},
		{
			name: "function",
			src:  "export function run() { return 1 }\n",
			want: "function run() { return 1 }; module.exports.run = run",
		},
		{
			name: "named list",
			src:  `export { a, b as c };`,
			want: `module.exports.a = a; module.exports.c = b`,
		},
		{
			name: "reexport",
			src:  `export { a } from "./a";`,
			want: `module.exports.a = require("./a").a`,
		},
		{
			name: "star reexport",
			src:  `export * from "./a";`,
			want: `Object.assign(module.exports, require("./a"))`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := transform(t, tt.src+"\n", "a.js", dialect.Flags{})
			if !strings.Contains(res.Code, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, res.Code)
			}
		})
	}
}

func TestTransform_TypeErasure(t *testing.T) {
	src := strings.Join([]string{
		`import type { T } from "./types";`,
		`import { real } from "./real";`,
		`type Alias = number;`,
		`interface Shape { x: number }`,
		`export type { U } from "./u";`,
		`const x = 1;`,
	}, "\n") + "\n"
	res := transform(t, src, "a.ts", dialect.Flags{Typed: true})

	for _, gone := range []string{"./types", "Alias", "interface Shape"} {
		if strings.Contains(res.Code, gone) {
			t.Errorf("type-only construct %q survived:\n%s", gone, res.Code)
		}
	}
	// side-effecting type re-export stays (KeepTypeReexports)
	if !strings.Contains(res.Code, `"./u"`) {
		t.Errorf("type re-export with runtime side effect was stripped:\n%s", res.Code)
	}
	if !strings.Contains(res.Code, `require("./real")`) {
		t.Errorf("value import lost:\n%s", res.Code)
	}
	if !strings.Contains(res.Code, "const x = 1") {
		t.Errorf("plain statement lost:\n%s", res.Code)
	}
}

func TestTransform_ModuleFormLeavesImportsAlone(t *testing.T) {
	src := "import { a } from \"./a\";\nimport \"x.css\";\n"
	res := transform(t, src, "a.mjs", dialect.Flags{Module: true})

	if !strings.Contains(res.Code, `import { a } from "./a"`) {
		t.Errorf("module-form import was rewritten:\n%s", res.Code)
	}
	// style elision only runs in the non-module pipeline
	if !strings.Contains(res.Code, "x.css") {
		t.Errorf("style import elided in module form:\n%s", res.Code)
	}
}

func TestTransform_DualSourceMaps(t *testing.T) {
	res := transform(t, "const x = 1;\n", "a.js", dialect.Flags{})

	if res.Map == nil {
		t.Fatalf("no standalone map")
	}
	if res.Map.Version != 3 || len(res.Map.Sources) != 1 || res.Map.Sources[0] != "a.js" {
		t.Errorf("map = %+v", res.Map)
	}
	if !strings.Contains(res.Code, "//# sourceMappingURL=data:application/json") {
		t.Errorf("no inline map comment:\n%s", res.Code)
	}
}

func TestTransform_UnknownStageIsConfigurationError(t *testing.T) {
	spec, err := pipeline.Assemble(dialect.Flags{}, stage.List{stage.Named("no-such-stage", nil)}, nil)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	_, err = New(nil).Transform(context.Background(), engine.Request{
		Source: "const x = 1;", Path: "a.js", Pipeline: spec,
	})
	if !errors.Is(err, stage.ErrUnknownStage) {
		t.Fatalf("Transform() error = %v, want ErrUnknownStage", err)
	}
}

func TestTransform_UnsupportedExportIsPositional(t *testing.T) {
	src := "const ok = 1;\nexport !!!;\n"
	spec, err := pipeline.Assemble(dialect.Flags{}, nil, nil)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	_, err = New(nil).Transform(context.Background(), engine.Request{
		Source: src, Path: "bad.js", Pipeline: spec,
	})
	var terr *engine.TransformError
	if !errors.As(err, &terr) {
		t.Fatalf("Transform() error = %v, want *TransformError", err)
	}
	if terr.Path != "bad.js" || terr.Pos.Line != 2 {
		t.Errorf("error position = %s:%s, want bad.js:2", terr.Path, terr.Pos)
	}
	if terr.Stage != stage.ModulesCommonJS {
		t.Errorf("error stage = %q", terr.Stage)
	}
}

func TestTransform_UntouchedStatementsStayVerbatim(t *testing.T) {
	src := "const a = `tpl ${1 + 2}`;\nif (a) {\n  call(a);\n}\n"
	res := transform(t, src, "a.js", dialect.Flags{})
	body, _, _ := strings.Cut(res.Code, "//# sourceMappingURL=")
	if body != src {
		t.Errorf("pass-through altered source:\n%q\nwant\n%q", body, src)
	}
}
