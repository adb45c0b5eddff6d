package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/gameplay.yaml":       {Data: []byte("player: {}")},
		"data/levels/level-1.yaml": {Data: []byte("name: one")},
		"data/levels/level-2.yaml": {Data: []byte("name: two")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// nil 文件系统视为未初始化
	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := ReadFile("data/gameplay.yaml"); err == nil ||
		err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("ReadFile() before Init() error = %v", err)
	}
	if _, err := Open("data/gameplay.yaml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
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
		{"plain", "data/gameplay.yaml", "player: {}", false},
		{"dot prefix", "./data/levels/level-1.yaml", "name: one", false},
		{"missing", "data/none.yaml", "", true},
		{"bad prefix", "assets/x.png", "", true},
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

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/gameplay.yaml") {
		t.Error("gameplay.yaml should exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("missing.yaml should not exist")
	}

	matches, err := Glob("data/levels/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob() = %v, want 2 matches", matches)
	}
}
