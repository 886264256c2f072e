package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("CURATOR_TEST_DIR", "/var/lib/curator")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/.local/share/curator/catalog.db", filepath.Join(home, ".local/share/curator/catalog.db")},
		{"$CURATOR_TEST_DIR/catalog.db", "/var/lib/curator/catalog.db"},
		{"cgss_images", "cgss_images"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
