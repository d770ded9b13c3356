package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"tubaudio/internal/validation"
)

// TestValidateFile runs checks for file validation -----------------------------------------------------------------------------
func TestValidateFile_ExistingFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(f, []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	info, err := validation.ValidateFile(f, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatalf("expected file info, got nil")
	}
}

func TestValidateFile_CreateIfMissing(t *testing.T) {
	f := filepath.Join(t.TempDir(), "nested", "newfile.txt")

	info, err := validation.ValidateFile(f, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(f); statErr != nil {
		t.Fatalf("file was not created")
	}
	if info == nil {
		t.Fatalf("expected os.FileInfo, got nil")
	}
}

func TestValidateFile_MissingNoCreate(t *testing.T) {
	f := filepath.Join(t.TempDir(), "does_not_exist.txt")

	if _, err := validation.ValidateFile(f, false); err == nil {
		t.Fatalf("expected error for missing file without create flag")
	}
}

func TestValidateFile_PathIsDirectory(t *testing.T) {
	if _, err := validation.ValidateFile(t.TempDir(), false); err == nil {
		t.Fatalf("expected error when path is a directory")
	}
}

// TestValidateDirectory runs checks for directory validation -------------------------------------------------------------------
func TestValidateDirectory_ExistingDirectory(t *testing.T) {
	info, err := validation.ValidateDirectory(t.TempDir(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil || !info.IsDir() {
		t.Fatalf("expected directory info, got %v", info)
	}
}

func TestValidateDirectory_CreateIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if _, err := validation.ValidateDirectory(dir, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("directory was not created: %v", err)
	}
}

func TestValidateDirectory_ErrorIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	if _, err := validation.ValidateDirectory(dir, false); err == nil {
		t.Fatalf("expected error for missing directory")
	}
	if _, err := os.Stat(dir); err == nil {
		t.Fatalf("directory should not have been created")
	}
}

func TestValidateDirectory_PathIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := validation.ValidateDirectory(f, false); err == nil {
		t.Fatalf("expected error when path is a file")
	}
}

func TestValidateAudioQuality(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "192K", want: "192K"},
		{in: "320k", want: "320K"},
		{in: " 0 ", want: "0"},
		{in: "10", want: "10"},
		{in: "11", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "0K", wantErr: true},
		{in: "highK", wantErr: true},
		{in: "best", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := validation.ValidateAudioQuality(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ValidateAudioQuality(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateAudioQuality(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidateAudioQuality(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
