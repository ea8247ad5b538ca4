package db

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "keepy.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestKVGetMissing(t *testing.T) {
	kv := openTestKV(t)

	_, ok, err := kv.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("missing key reported as present")
	}
}

func TestKVSetGet(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := kv.Get(KeyTheme)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != "dark" {
		t.Errorf("Get = %q, %v; want dark, true", v, ok)
	}

	// Overwrite
	if err := kv.Set(KeyTheme, "light"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _, _ = kv.Get(KeyTheme)
	if v != "light" {
		t.Errorf("Get after overwrite = %q, want light", v)
	}
}

func TestKVDelete(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set(KeyAuth, "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Delete(KeyAuth); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, ok, _ := kv.Get(KeyAuth)
	if ok {
		t.Error("deleted key still present")
	}

	// Deleting a missing key is fine
	if err := kv.Delete("nope"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestKVReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keepy.db")
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := kv.Set(KeyProfiles, "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	kv.Close()

	kv2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv2.Close()
	v, ok, err := kv2.Get(KeyProfiles)
	if err != nil || !ok || v != "[]" {
		t.Errorf("value lost across reopen: %q, %v, %v", v, ok, err)
	}
}
