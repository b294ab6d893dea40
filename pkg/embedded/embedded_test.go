package embedded

import (
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时读取
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)
	if _, err := ReadFile("data/motion.yaml"); err == nil {
		t.Error("Expected error when not initialized")
	}
	if Exists("data/motion.yaml") {
		t.Error("Exists should be false when not initialized")
	}
}

// TestReadFile 测试路径标准化与前缀校验
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/motion.yaml": &fstest.MapFile{Data: []byte("field:\n  count: 10\n")},
	})
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/motion.yaml", false},
		{"带 ./ 前缀", "./data/motion.yaml", false},
		{"未知前缀", "assets/motion.yaml", true},
		{"不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("expected data")
			}
			if Exists(tt.path) == tt.wantErr {
				t.Errorf("Exists(%q) = %v", tt.path, !tt.wantErr)
			}
		})
	}
}
