package fsworkspace

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	i := NewInitializer(fsys)

	if err := i.ensureGitignore("/ws"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	s := readFile(t, fsys, "/ws/.gitignore")
	for _, w := range []string{"# zoneinfo", ".zoneinfo/"} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, s)
		}
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	fsys := afero.NewMemMapFs()
	existing := "node_modules/\n# zoneinfo"
	if err := afero.WriteFile(fsys, "/ws/.gitignore", []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	i := NewInitializer(fsys)
	if err := i.ensureGitignore("/ws"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}
	if err := i.ensureGitignore("/ws"); err != nil {
		t.Fatalf("second ensureGitignore error: %v", err)
	}

	s := readFile(t, fsys, "/ws/.gitignore")
	if !strings.HasPrefix(s, "node_modules/\n# zoneinfo\n") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if strings.Count(s, "# zoneinfo") != 1 {
		t.Fatalf("expected 1 header, got:\n%s", s)
	}
	if strings.Count(s, ".zoneinfo/") != 1 {
		t.Fatalf("expected .zoneinfo/ exactly once, got:\n%s", s)
	}
}
