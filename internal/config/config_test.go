package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/spf13/viper"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(yaml)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(newViper(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Profile != "dotgrid" {
		t.Errorf("Profile = %q, want dotgrid", c.Profile)
	}
	if c.Store != "file" {
		t.Errorf("Store = %q, want file", c.Store)
	}
	if c.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", c.Format)
	}
	if len(c.Redis.Addrs) != 1 || c.Redis.Prefix != "vecbind" {
		t.Errorf("Redis = %+v", c.Redis)
	}
	if c.Dir == "" {
		t.Error("Dir should default to a profiles directory")
	}
	if filepath.Base(c.DBPath) != "profiles.db" {
		t.Errorf("DBPath = %q", c.DBPath)
	}
}

func TestLoadFile(t *testing.T) {
	c, err := Load(newViper(t, `
profile: lefthand
store: Redis
redis:
  addrs: ["10.0.0.1:6379", "10.0.0.2:6379"]
  db: 2
  master_name: mymaster
overrides:
  - layer: base
    key: G
    action: bezier_cube
  - layer: ctrl
    key: s
    action: ""
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Profile != "lefthand" || c.Store != "redis" {
		t.Errorf("Profile/Store = %q/%q", c.Profile, c.Store)
	}
	if len(c.Redis.Addrs) != 2 || c.Redis.DB != 2 || c.Redis.MasterName != "mymaster" {
		t.Errorf("Redis = %+v", c.Redis)
	}
	want := []keymap.Override{
		{Layer: "base", Key: "G", Action: keymap.ActionBezierCube},
		{Layer: "ctrl", Key: "s", Action: keymap.NoAction},
	}
	if len(c.Overrides) != len(want) {
		t.Fatalf("Overrides = %+v", c.Overrides)
	}
	for i := range want {
		if c.Overrides[i] != want[i] {
			t.Errorf("Overrides[%d] = %+v, want %+v", i, c.Overrides[i], want[i])
		}
	}
}

func TestLoadEmptyProfile(t *testing.T) {
	if _, err := Load(newViper(t, `profile: ""`)); err == nil {
		t.Error("Load with empty profile should fail")
	}
}

func TestParseOverride(t *testing.T) {
	tests := []struct {
		in      string
		want    keymap.Override
		wantErr bool
	}{
		{in: "base:g=line", want: keymap.Override{Layer: "base", Key: "g", Action: "line"}},
		{in: "ctrl:s=", want: keymap.Override{Layer: "ctrl", Key: "s"}},
		{in: "base:==arc", want: keymap.Override{Layer: "base", Key: "=", Action: "arc"}},
		{in: "base::=close", want: keymap.Override{Layer: "base", Key: ":", Action: "close"}},
		{in: "g=line", wantErr: true},
		{in: ":g=line", wantErr: true},
		{in: "base:gg=line", wantErr: true},
		{in: "base:", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOverride(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOverride(%q) = %+v, want error", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseOverride(%q) = %+v, %v; want %+v", tt.in, got, err, tt.want)
		}
	}
}
