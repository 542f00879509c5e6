package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hawkins/vecbind/internal/codec"
	"github.com/hawkins/vecbind/internal/config"
	"github.com/hawkins/vecbind/internal/keymap"
)

func TestResolveFallsBackToBuiltin(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(t.TempDir(), codec.YAML)

	km, err := Resolve(ctx, s, keymap.ProfileLefthand, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if a, ok := km.ResolveString("g"); !ok || a != keymap.ActionBezierCube {
		t.Errorf("g = %q, %v; want bezier_cube", a, ok)
	}
}

func TestResolveUnknownProfile(t *testing.T) {
	s := NewFileStore(t.TempDir(), codec.YAML)
	if _, err := Resolve(context.Background(), s, "custom", nil); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Resolve error = %v, want %v", err, ErrProfileNotFound)
	}
}

func TestResolvePrefersStoredProfile(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(t.TempDir(), codec.YAML)

	stored, err := keymap.Default().Rebind(keymap.Override{Layer: keymap.LayerBase, Key: "a", Action: keymap.ActionArc})
	if err != nil {
		t.Fatalf("Rebind: %v", err)
	}
	if err := s.Save(ctx, keymap.ProfileDotgrid, stored); err != nil {
		t.Fatalf("Save: %v", err)
	}

	km, err := Resolve(ctx, s, keymap.ProfileDotgrid, []keymap.Override{
		{Layer: keymap.LayerCtrl, Key: "e", Action: keymap.ActionExportPNG},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if a, _ := km.ResolveString("a"); a != keymap.ActionArc {
		t.Errorf("a = %q, want arc from the stored profile", a)
	}
	if a, _ := km.ResolveString("ctrl+e"); a != keymap.ActionExportPNG {
		t.Errorf("ctrl+e = %q, want png from the override", a)
	}
	if _, ok := km.ResolveString("ctrl+p"); ok {
		t.Error("ctrl+p should have moved to ctrl+e")
	}
}

func TestResolveBadOverride(t *testing.T) {
	s := NewFileStore(t.TempDir(), codec.YAML)
	_, err := Resolve(context.Background(), s, keymap.ProfileDotgrid, []keymap.Override{
		{Layer: "shift", Key: "a", Action: keymap.ActionLine},
	})
	if !errors.Is(err, keymap.ErrUnknownLayer) {
		t.Errorf("Resolve error = %v, want %v", err, keymap.ErrUnknownLayer)
	}
}

func TestOpen(t *testing.T) {
	s, err := Open(config.Config{Store: "file", Dir: filepath.Join(t.TempDir(), "p"), Format: "toml"})
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Open(file) = %T, want *FileStore", s)
	}

	s, err = Open(config.Config{Store: "bolt", DBPath: filepath.Join(t.TempDir(), "p.db")})
	if err != nil {
		t.Fatalf("Open(bolt): %v", err)
	}
	if _, ok := s.(*BoltStore); !ok {
		t.Errorf("Open(bolt) = %T, want *BoltStore", s)
	}
	_ = s.Close()

	if _, err := Open(config.Config{Store: "file", Format: "ini"}); !errors.Is(err, codec.ErrUnknownFormat) {
		t.Errorf("Open with bad format error = %v, want %v", err, codec.ErrUnknownFormat)
	}
	if _, err := Open(config.Config{Store: "etcd"}); err == nil {
		t.Error("Open(etcd) should fail")
	}
}

func TestValidateProfile(t *testing.T) {
	for _, name := range []string{"dotgrid", "my-profile", "v1.2", "A_b"} {
		if err := ValidateProfile(name); err != nil {
			t.Errorf("ValidateProfile(%q) = %v", name, err)
		}
	}
}
