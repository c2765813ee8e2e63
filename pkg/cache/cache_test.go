package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	key := Key("chart", "timeline", "svg")

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get before Set = ok %v, err %v; want miss", ok, err)
	}

	if err := c.Set(ctx, key, []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok %v, err %v", ok, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get = %q, want %q", data, "<svg/>")
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Error("Get after Delete should miss")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// TTL <= 0 means no expiration, so the entry must survive.
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Error("entry with zero/negative TTL should not expire")
	}

	if err := c.Set(ctx, "k2", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "k2"); ok {
		t.Error("entry past its TTL should miss")
	}
}

func TestFileCacheDeleteMissing(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("Delete of missing key = %v, want nil", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("NullCache.Get = ok %v, err %v; want permanent miss", ok, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestKeyStability(t *testing.T) {
	k1 := Key("chart", "produced", 1985, "svg")
	k2 := Key("chart", "produced", 1985, "svg")
	k3 := Key("chart", "produced", 1986, "svg")

	if k1 != k2 {
		t.Error("identical inputs should produce identical keys")
	}
	if k1 == k3 {
		t.Error("different inputs should produce different keys")
	}
	if Key("c", "a", "bc") == Key("c", "ab", "c") {
		t.Error("part boundaries should affect the key")
	}
	if len(Hash([]byte("x"))) != 64 {
		t.Error("Hash should return 64 hex characters")
	}
}
