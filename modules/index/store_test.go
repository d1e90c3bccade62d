package index_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fcatools/wdcontext/modules/index"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	indexes := index.NewIndexes()
	indexes.Labels["Q1"] = "universe"
	indexes.Labels["P31"] = "instance of"
	indexes.Instances["Q1"] = set("Q2", "Q3")
	indexes.Subclasses["Q2"] = set("Q3")

	path := filepath.Join(t.TempDir(), "indexes.msgpack.lz4")
	if err := indexes.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := index.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !reflect.DeepEqual(loaded.Labels, indexes.Labels) {
		t.Errorf("labels = %v, want %v", loaded.Labels, indexes.Labels)
	}
	if !reflect.DeepEqual(loaded.Instances, indexes.Instances) {
		t.Errorf("instances = %v, want %v", loaded.Instances, indexes.Instances)
	}
	if !reflect.DeepEqual(loaded.Subclasses, indexes.Subclasses) {
		t.Errorf("subclasses = %v, want %v", loaded.Subclasses, indexes.Subclasses)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := index.Load(filepath.Join(t.TempDir(), "nope.msgpack.lz4")); err == nil {
		t.Error("expected an error for a missing index file")
	}
}
