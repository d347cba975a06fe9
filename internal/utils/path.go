package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver finds dictionary sources relative to the places wordcost is
// usually run from.
type PathResolver struct {
	executableDir string
	workingDir    string
	configDir     string
}

// NewPathResolver captures the executable and working directories.
// configDir may be empty.
func NewPathResolver(configDir string) *PathResolver {
	pr := &PathResolver{configDir: configDir}
	if execDir, err := ExecutableDir(); err == nil {
		pr.executableDir = execDir
	} else {
		log.Warnf("Could not determine executable directory: %v", err)
	}
	if cwd, err := os.Getwd(); err == nil {
		pr.workingDir = cwd
	}
	return pr
}

// Candidates lists where a user supplied path is looked for, in order:
// the path itself if absolute, then relative to the working directory,
// the executable directory and the config directory.
func (pr *PathResolver) Candidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	var candidates []string
	for _, base := range []string{pr.workingDir, pr.executableDir, pr.configDir} {
		if base == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(base, userPath))
	}
	return candidates
}

// Resolve returns the first existing candidate for userPath. When nothing
// exists it returns userPath unchanged so the caller reports the original name.
func (pr *PathResolver) Resolve(userPath string) string {
	for _, path := range pr.Candidates(userPath) {
		if FileExists(path) {
			log.Debugf("Resolved %s to %s", userPath, path)
			return path
		}
		log.Debugf("Path candidate not found: %s", path)
	}
	return userPath
}
