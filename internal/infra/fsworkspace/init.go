package fsworkspace

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

//go:embed templates/zoneinfo.yaml
var configTemplate []byte

// ConfigFile is the file Init writes at the workspace root.
const ConfigFile = ".zoneinfo.yaml"

type Initializer struct {
	fs afero.Fs
}

// NewInitializer returns an initializer writing to fsys, or to the OS filesystem when nil.
func NewInitializer(fsys afero.Fs) *Initializer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Initializer{fs: fsys}
}

// Init writes a commented .zoneinfo.yaml and the log directory under root, and keeps
// logs out of git. An existing config file is only replaced with force.
func (i *Initializer) Init(root string, force bool) error {
	const op = "fsworkspace.init"
	root = filepath.Clean(root)

	if err := i.fs.MkdirAll(filepath.Join(root, ".zoneinfo", "logs"), 0o755); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindConfiguration, Path: root, Err: err}
	}

	if err := i.ensureGitignore(root); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindConfiguration, Path: root, Err: err}
	}

	dst := filepath.Join(root, ConfigFile)
	if !force {
		if ok, _ := afero.Exists(i.fs, dst); ok {
			return nil
		}
	}
	if err := afero.WriteFile(i.fs, dst, configTemplate, 0o644); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindConfiguration, Path: dst, Err: err}
	}
	return nil
}

func (i *Initializer) ensureGitignore(root string) error {
	const header = "# zoneinfo"
	entries := []string{
		".zoneinfo/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := afero.ReadFile(i.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return afero.WriteFile(i.fs, path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return afero.WriteFile(i.fs, path, []byte(out.String()), 0o644)
}
