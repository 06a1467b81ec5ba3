package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nezticle/qlmdenoiser/pipeline"
)

func TestIsManifest(t *testing.T) {
	type spec struct {
		path string
		exp  bool
	}
	specs := []spec{
		{"list.txt", true},
		{"/abs/LIST.TXT", true},
		{"lightmap.exr", false},
		{"txt", false},
		{"archive.txt.exr", false},
	}

	for index, s := range specs {
		if got := IsManifest(s.path); got != s.exp {
			t.Fatalf("[spec %d] expected IsManifest(%q) to be %t; got %t", index, s.path, s.exp, got)
		}
	}
}

func TestReadManifest(t *testing.T) {
	type spec struct {
		contents string
		exp      []string
	}
	specs := []spec{
		{"a.exr\n\nb.exr\n", []string{"a.exr", "b.exr"}},
		{"  a.exr  \r\n\t\n b.exr", []string{"a.exr", "b.exr"}},
		{"\n\n\n", nil},
		{"", nil},
		{"dir with spaces/c.exr\n", []string{"dir with spaces/c.exr"}},
	}

	for index, s := range specs {
		manifest := writeManifest(t, s.contents)

		entries, err := ReadManifest(manifest)
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if !reflect.DeepEqual(entries, s.exp) {
			t.Fatalf("[spec %d] expected entries %q; got %q", index, s.exp, entries)
		}
	}
}

func TestReadManifestMissingFile(t *testing.T) {
	_, err := ReadManifest(filepath.Join(os.TempDir(), "qlmdenoiser-missing-list.txt"))
	if pipeline.KindOf(err) != pipeline.ManifestError {
		t.Fatalf("expected a manifest error; got %v", err)
	}
}

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "manifest-test-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	manifest := filepath.Join(dir, "list.txt")
	if err = os.WriteFile(manifest, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return manifest
}
