package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/field.yaml":        {Data: []byte("field:\n  count: 3\n")},
		"data/presets/calm.yaml": {Data: []byte("field:\n  damping: 0.95\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
	Init(nil)
}

func TestAccessorsNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := ReadFile("data/field.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadDir("data"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadDir() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/field.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"plain", "data/field.yaml", "field:\n  count: 3\n", false},
		{"dot prefix", "./data/field.yaml", "field:\n  count: 3\n", false},
		{"nested", "data/presets/calm.yaml", "field:\n  damping: 0.95\n", false},
		{"missing", "data/nope.yaml", "", true},
		{"wrong prefix", "assets/field.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/field.yaml") {
		t.Error("Expected data/field.yaml to exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("Expected data/missing.yaml to be missing")
	}
	if Exists("field.yaml") {
		t.Error("Expected paths without data/ prefix to be rejected")
	}
}

func TestReadDir(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	entries, err := ReadDir("data/presets/")
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "calm.yaml" {
		t.Errorf("ReadDir() = %v, want [calm.yaml]", entries)
	}
}
