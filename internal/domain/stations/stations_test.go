package stations

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestS1DecodeAudio_StripsDataURLHeader(t *testing.T) {
	s1 := NewS1DecodeAudio(zap.NewNop().Sugar())

	a, err := s1.Run("data:audio/wav;base64,AAAA")
	if err != nil {
		t.Fatalf("Run(data url): %v", err)
	}
	b, err := s1.Run("AAAA")
	if err != nil {
		t.Fatalf("Run(bare): %v", err)
	}

	if !bytes.Equal(a, b) || !bytes.Equal(a, []byte{0, 0, 0}) {
		t.Errorf("decoded %v and %v, want [0 0 0] twice", a, b)
	}
}

func TestS1DecodeAudio_Invalid(t *testing.T) {
	s1 := NewS1DecodeAudio(zap.NewNop().Sugar())

	if _, err := s1.Run("not base64!"); err == nil {
		t.Fatal("expected error")
	}
}

func TestS2SpoolAudio_WritesAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	s2 := NewS2SpoolAudio(dir, zap.NewNop().Sugar())

	path, cleanup, err := s2.Run([]byte("wav-bytes"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), "lead-audio-") {
		t.Errorf("unexpected path %s", path)
	}

	got, err := os.ReadFile(path)
	if err != nil || string(got) != "wav-bytes" {
		t.Fatalf("ReadFile = %q, %v", got, err)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still present after cleanup: %v", err)
	}

	// second cleanup is a no-op
	cleanup()
}

func TestS2SpoolAudio_UniquePaths(t *testing.T) {
	s2 := NewS2SpoolAudio(t.TempDir(), zap.NewNop().Sugar())

	p1, c1, err := s2.Run([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	defer c1()
	p2, c2, err := s2.Run([]byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	defer c2()

	if p1 == p2 {
		t.Fatalf("paths collide: %s", p1)
	}
}

func TestS2SpoolAudio_MissingDir(t *testing.T) {
	s2 := NewS2SpoolAudio(filepath.Join(t.TempDir(), "missing"), zap.NewNop().Sugar())

	if _, _, err := s2.Run([]byte("a")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
