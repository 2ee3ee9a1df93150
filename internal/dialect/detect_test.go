package dialect

import "testing"

func TestDetect_Extensions(t *testing.T) {
	tests := []struct {
		path string
		want Flags
	}{
		{path: "a.js", want: Flags{}},
		{path: "a.jsx", want: Flags{JSX: JSXAutomatic}},
		{path: "a.ts", want: Flags{Typed: true}},
		{path: "a.tsx", want: Flags{Typed: true, JSX: JSXAutomatic}},
		{path: "a.mts", want: Flags{Typed: true, Module: true}},
		{path: "a.cts", want: Flags{Typed: true}},
		{path: "a.mjs", want: Flags{Module: true}},
		{path: "a.cjs", want: Flags{}},
		{path: "dir/deep/a.ts", want: Flags{Typed: true}},
		{path: "a.txt", want: Flags{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Detect(tt.path, nil); got != tt.want {
				t.Errorf("Detect(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDetect_Pragmas(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Flags
	}{
		{
			name: "classic factory pragma",
			src:  "/** @jsx h */\nconst x = 1;\n",
			want: Flags{JSX: JSXClassic, JSXPragma: "h"},
		},
		{
			name: "classic factory and fragment",
			src:  "/** @jsx h */\n/** @jsxFrag Fragment */\n",
			want: Flags{JSX: JSXClassic, JSXPragma: "h", JSXFragmentPragma: "Fragment"},
		},
		{
			name: "import source pragma",
			src:  "/** @jsxImportSource preact */\n",
			want: Flags{JSX: JSXAutomatic, JSXImportSource: "preact"},
		},
		{
			name: "runtime classic pragma",
			src:  "/** @jsxRuntime classic */\n",
			want: Flags{JSX: JSXClassic},
		},
		{
			name: "import source does not leak into classic pragma",
			src:  "// @jsxImportSource preact\n",
			want: Flags{JSX: JSXAutomatic, JSXImportSource: "preact"},
		},
		{
			name: "no pragma",
			src:  "const x = 1;\n",
			want: Flags{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect("a.js", []byte(tt.src)); got != tt.want {
				t.Errorf("Detect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
