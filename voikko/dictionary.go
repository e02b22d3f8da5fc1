package voikko

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// dictionaryPaths resolves the on-disk location of the morphology and
// (optional) autocorrect transducers for a dictionary directory, following
// both recognized layouts (spec.md §6): a flat directory holding
// mor.vfst/autocorr.vfst directly, or a "5/mor-standard/" subdirectory
// layout (spec.md [ADD], mirroring voikko-fi's own versioned dictionary
// backends).
type dictionaryPaths struct {
	morPath       string
	autocorrPath  string
	indexPath     string
}

func resolveDictionaryPaths(dir string) (dictionaryPaths, error) {
	candidates := []string{dir, filepath.Join(dir, "5", "mor-standard")}
	for _, c := range candidates {
		mor := filepath.Join(c, "mor.vfst")
		if _, err := os.Stat(mor); err == nil {
			return dictionaryPaths{
				morPath:      mor,
				autocorrPath: filepath.Join(c, "autocorr.vfst"),
				indexPath:    filepath.Join(c, "index.txt"),
			}, nil
		}
	}
	return dictionaryPaths{}, &os.PathError{Op: "open", Path: filepath.Join(dir, "mor.vfst"), Err: os.ErrNotExist}
}

// parseIndexFile reads the sibling index.txt metadata format: one
// "key: value" pair per line, "#"-prefixed comments and blank lines
// ignored. Unknown keys are retained verbatim (spec.md §6 [ADD]).
func parseIndexFile(path string) map[string]string {
	info := make(map[string]string)
	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			key, value, ok = strings.Cut(line, ":")
		}
		if !ok {
			continue
		}
		info[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return info
}
