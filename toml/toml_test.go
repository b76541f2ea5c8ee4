package toml

import (
	"strings"
	"testing"
)

// TestUnmarshalTables verifies the pipeline from TOML text to nested structs
func TestUnmarshalTables(t *testing.T) {
	input := []byte(`
# player settings
title = "Borof \"Pani\""
e = 3

[audio]
volume = 0.25
enabled = true

[display.window]
width = 1_900
"full screen" = false
`)

	type Window struct {
		Width      int  `toml:"width"`
		FullScreen bool `toml:"full screen"`
	}
	type Config struct {
		Title string `toml:"title"`
		E     int    `toml:"e"`
		Audio struct {
			Volume  float64 `toml:"volume"`
			Enabled bool    `toml:"enabled"`
		} `toml:"audio"`
		Display struct {
			Window *Window `toml:"window"`
		} `toml:"display"`
		Ignored string `toml:"-"`
	}

	var cfg Config
	if err := Unmarshal(input, &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Title != `Borof "Pani"` {
		t.Errorf("Expected escaped title, got %q", cfg.Title)
	}
	if cfg.E != 3 {
		t.Errorf("Expected e = 3, got %d", cfg.E)
	}
	if cfg.Audio.Volume != 0.25 || !cfg.Audio.Enabled {
		t.Errorf("Expected audio {0.25 true}, got %+v", cfg.Audio)
	}
	if cfg.Display.Window == nil || cfg.Display.Window.Width != 1900 || cfg.Display.Window.FullScreen {
		t.Errorf("Expected window {1900 false}, got %+v", cfg.Display.Window)
	}
}

// TestUnmarshalLegacyFlags verifies key=value lines with 0/1 booleans
func TestUnmarshalLegacyFlags(t *testing.T) {
	var s struct {
		Volume     float64 `toml:"volume"`
		Map        int     `toml:"map"`
		Fullscreen bool    `toml:"fullscreen"`
	}
	if err := Unmarshal([]byte("volume=0.750000\nmap=1\nfullscreen=1\n"), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.Volume != 0.75 || s.Map != 1 || !s.Fullscreen {
		t.Errorf("Expected {0.75 1 true}, got %+v", s)
	}

	if err := Unmarshal([]byte("fullscreen = 2\n"), &s); err == nil {
		t.Error("Expected error for fullscreen = 2")
	}
}

// TestParseErrors verifies malformed input is rejected with an error
func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"missing equals":   "volume 0.5\n",
		"unclosed table":   "[audio\nvolume = 1\n",
		"duplicate key":    "a = 1\na = 2\n",
		"redefined table":  "[a]\n[a]\n",
		"array value":      "a = [1, 2]\n",
		"array of tables":  "[[a]]\n",
		"inline table":     "a = { b = 1 }\n",
		"unterminated":     "a = \"abc\n",
		"bad escape":       "a = \"\\q\"\n",
		"trailing garbage": "a = 1 2\n",
		"key over table":   "a = 1\n[a]\n",
		"bad number":       "a = 1.2.3\n",
	}
	for name, data := range cases {
		if _, err := NewParser([]byte(data)).Parse(); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

// TestParseKeyTypes verifies value typing in the generic map
func TestParseKeyTypes(t *testing.T) {
	m, err := NewParser([]byte("i = -4\nf = 1e3\ns = \"x\"\nb = false\n1 = \"one\"\n")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, ok := m["i"].(int); !ok || v != -4 {
		t.Errorf("Expected int -4, got %#v", m["i"])
	}
	if v, ok := m["f"].(float64); !ok || v != 1000 {
		t.Errorf("Expected float 1000, got %#v", m["f"])
	}
	if v, ok := m["s"].(string); !ok || v != "x" {
		t.Errorf("Expected string x, got %#v", m["s"])
	}
	if v, ok := m["b"].(bool); !ok || v {
		t.Errorf("Expected bool false, got %#v", m["b"])
	}
	if v, ok := m["1"].(string); !ok || v != "one" {
		t.Errorf("Expected digit key, got %#v", m["1"])
	}
}

// TestMarshalLayout verifies scalars precede tables and keys are quoted when needed
func TestMarshalLayout(t *testing.T) {
	type Audio struct {
		Volume float64 `toml:"volume"`
	}
	type Root struct {
		Audio Audio  `toml:"audio"`
		Name  string `toml:"name"`
		Map   int    `toml:"map"`
		Full  bool   `toml:"fullscreen"`
		Skip  string `toml:"skip,omitempty"`
		Nil   *Audio `toml:"nil"`
	}

	out, err := Marshal(Root{Audio: Audio{Volume: 1}, Name: "a\"b", Map: 1, Full: true})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := "name = \"a\\\"b\"\nmap = 1\nfullscreen = true\n\n[audio]\nvolume = 1.0\n"
	if string(out) != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, out)
	}

	out, err = Marshal(map[string]any{"b key": 2, "a": "x"})
	if err != nil {
		t.Fatalf("Marshal map failed: %v", err)
	}
	if !strings.HasPrefix(string(out), "a = \"x\"\n\"b key\" = 2\n") {
		t.Errorf("Expected sorted, quoted keys, got:\n%s", out)
	}

	if _, err := Marshal(3); err == nil {
		t.Error("Expected error for scalar root")
	}
}

// TestMarshalRoundTrip verifies encoder output decodes to the same struct
func TestMarshalRoundTrip(t *testing.T) {
	type Keys struct {
		Left string `toml:"left"`
	}
	type Doc struct {
		Volume float64 `toml:"volume"`
		Keys   Keys    `toml:"keys"`
	}
	in := Doc{Volume: 0.3, Keys: Keys{Left: "p1_left"}}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out Doc
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("Expected %+v, got %+v", in, out)
	}
}
