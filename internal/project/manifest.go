package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"morph/internal/dialect"
	"morph/internal/stage"
)

var (
	// ErrStageNameMissing indicates a [[stages.prologue]] or
	// [[stages.epilogue]] entry without a name.
	ErrStageNameMissing = errors.New("missing stage name")
)

// Manifest is a parsed morph.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the morph.toml structure.
type Config struct {
	Dialect DialectConfig `toml:"dialect"`
	Stages  StagesConfig  `toml:"stages"`
}

// DialectConfig holds the project-wide dialect defaults. Per-file detection
// and CLI flags override it.
type DialectConfig struct {
	Typed             bool   `toml:"typed"`
	Module            bool   `toml:"module"`
	JSX               string `toml:"jsx"`
	JSXPragma         string `toml:"jsx-pragma"`
	JSXFragmentPragma string `toml:"jsx-fragment-pragma"`
	JSXImportSource   string `toml:"jsx-import-source"`
}

// StagesConfig declares caller-supplied bookend stages.
type StagesConfig struct {
	Prologue []StageEntry `toml:"prologue"`
	Epilogue []StageEntry `toml:"epilogue"`
}

// StageEntry is one declared stage: a name plus an opaque options table the
// engine's registry interprets.
type StageEntry struct {
	Name    string         `toml:"name"`
	Options map[string]any `toml:"options"`
}

// Flags converts the dialect section into validated flags.
func (c DialectConfig) Flags() (dialect.Flags, error) {
	mode, err := dialect.ParseJSXMode(c.JSX)
	if err != nil {
		return dialect.Flags{}, err
	}
	flags := dialect.Flags{
		Typed:             c.Typed,
		Module:            c.Module,
		JSX:               mode,
		JSXPragma:         c.JSXPragma,
		JSXFragmentPragma: c.JSXFragmentPragma,
		JSXImportSource:   c.JSXImportSource,
	}
	if err := flags.Validate(); err != nil {
		return dialect.Flags{}, err
	}
	return flags, nil
}

// PrologueStages returns the declared prologue stages as a stage list.
func (s StagesConfig) PrologueStages() stage.List {
	return stageList(s.Prologue)
}

// EpilogueStages returns the declared epilogue stages as a stage list.
func (s StagesConfig) EpilogueStages() stage.List {
	return stageList(s.Epilogue)
}

func stageList(entries []StageEntry) stage.List {
	if len(entries) == 0 {
		return nil
	}
	list := make(stage.List, 0, len(entries))
	for _, e := range entries {
		var options any
		if len(e.Options) > 0 {
			options = e.Options
		}
		list = append(list, stage.Named(e.Name, options))
	}
	return list
}

// LoadManifest parses and validates a morph.toml at path.
func LoadManifest(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("dialect") {
		if _, err := cfg.Dialect.Flags(); err != nil {
			return nil, fmt.Errorf("%s: [dialect]: %w", path, err)
		}
	}
	for _, group := range []struct {
		key     string
		entries []StageEntry
	}{
		{"stages.prologue", cfg.Stages.Prologue},
		{"stages.epilogue", cfg.Stages.Epilogue},
	} {
		for i, e := range group.entries {
			if strings.TrimSpace(e.Name) == "" {
				return nil, fmt.Errorf("%s: [[%s]] #%d: %w", path, group.key, i+1, ErrStageNameMissing)
			}
		}
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Discover locates and loads the nearest manifest above startDir.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}
