package stage

import (
	"reflect"
	"testing"
)

func TestParseImport(t *testing.T) {
	tests := []struct {
		name string
		text string
		want importDecl
		ok   bool
	}{
		{
			name: "bare",
			text: `import "./setup"`,
			want: importDecl{Bare: true, Module: "./setup"},
			ok:   true,
		},
		{
			name: "bare single quotes",
			text: `import 'styles.css'`,
			want: importDecl{Bare: true, Module: "styles.css"},
			ok:   true,
		},
		{
			name: "default",
			text: `import React from "react"`,
			want: importDecl{Default: "React", Module: "react"},
			ok:   true,
		},
		{
			name: "namespace",
			text: `import * as path from "path"`,
			want: importDecl{Namespace: "path", Module: "path"},
			ok:   true,
		},
		{
			name: "named",
			text: `import { join, sep as separator } from "path"`,
			want: importDecl{
				Named:  []importSpec{{Name: "join"}, {Name: "sep", Alias: "separator"}},
				Module: "path",
			},
			ok: true,
		},
		{
			name: "default and named",
			text: `import React, { useState } from "react"`,
			want: importDecl{
				Default: "React",
				Named:   []importSpec{{Name: "useState"}},
				Module:  "react",
			},
			ok: true,
		},
		{
			name: "default and namespace",
			text: `import D, * as N from "m"`,
			want: importDecl{Default: "D", Namespace: "N", Module: "m"},
			ok:   true,
		},
		{
			name: "type only named",
			text: `import type { T } from "./types"`,
			want: importDecl{
				TypeOnly: true,
				Named:    []importSpec{{Name: "T"}},
				Module:   "./types",
			},
			ok: true,
		},
		{
			name: "type only default",
			text: `import type T from "./types"`,
			want: importDecl{TypeOnly: true, Default: "T", Module: "./types"},
			ok:   true,
		},
		{
			name: "default binding named type",
			text: `import type from "m"`,
			want: importDecl{Default: "type", Module: "m"},
			ok:   true,
		},
		{
			name: "assertion clause ignored",
			text: `import { a } from "m" assert { type: "json" }`,
			want: importDecl{Named: []importSpec{{Name: "a"}}, Module: "m"},
			ok:   true,
		},
		{
			name: "not an import",
			text: `const x = 1`,
			ok:   false,
		},
		{
			name: "missing module",
			text: `import { a } from`,
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseImport(tt.text)
			if ok != tt.ok {
				t.Fatalf("parseImport(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseImport(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsImportDecl(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{`import "m"`, true},
		{`import { a } from "m"`, true},
		{`import`, true},
		{`import("m")`, false},
		{`import ("m")`, false},
		{`import.meta.url`, false},
		{`importx()`, false},
		{`const x = 1`, false},
	}
	for _, tt := range tests {
		if got := isImportDecl(tt.text); got != tt.want {
			t.Errorf("isImportDecl(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
