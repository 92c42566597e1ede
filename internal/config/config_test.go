package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte(content), 0o644)))
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg, Default()))
}

var loadTests = []struct {
	testName string
	file     string
	content  string
	want     Config
}{{
	testName: "YAML",
	file:     "cfg.yaml",
	content: `
separator: ","
field: 2
reverse: true
fold-case: true
`,
	want: Config{Separator: ",", Field: 2, Reverse: true, FoldCase: true},
}, {
	testName: "YMLPartial",
	file:     "cfg.yml",
	content:  "reverse: true\n",
	want:     Config{Separator: "\t", Field: -1, Reverse: true},
}, {
	testName: "YAMLEmpty",
	file:     "cfg.yaml",
	content:  "",
	want:     Default(),
}, {
	testName: "TOML",
	file:     "cfg.toml",
	content: `
separator = ":"
field = 0
fold-case = true
`,
	want: Config{Separator: ":", Field: 0, FoldCase: true},
}}

func TestLoad(t *testing.T) {
	for _, test := range loadTests {
		t.Run(test.testName, func(t *testing.T) {
			cfg, err := Load(writeFile(t, test.file, test.content))
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(cfg, test.want))
		})
	}
}

var loadErrorTests = []struct {
	testName    string
	file        string
	content     string
	expectError string
}{{
	testName:    "UnknownExtension",
	file:        "cfg.json",
	content:     "{}",
	expectError: `config file ".*cfg.json": unknown format ".json"`,
}, {
	testName:    "UnknownYAMLField",
	file:        "cfg.yaml",
	content:     "colour: red\n",
	expectError: `config file ".*": (.|\n)*field colour not found(.|\n)*`,
}, {
	testName:    "UnknownTOMLKey",
	file:        "cfg.toml",
	content:     "colour = \"red\"\n",
	expectError: `config file ".*": unknown keys \[colour\]`,
}, {
	testName:    "EmptySeparator",
	file:        "cfg.yaml",
	content:     "separator: \"\"\n",
	expectError: `config file ".*": separator must not be empty`,
}, {
	testName:    "BadField",
	file:        "cfg.toml",
	content:     "field = -5\n",
	expectError: `config file ".*": invalid field -5`,
}, {
	testName:    "BadTOML",
	file:        "cfg.toml",
	content:     "field = \n",
	expectError: `config file ".*": (.|\n)+`,
}}

func TestLoadError(t *testing.T) {
	for _, test := range loadErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			_, err := Load(writeFile(t, test.file, test.content))
			qt.Assert(t, qt.ErrorMatches(err, test.expectError))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}
