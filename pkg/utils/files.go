package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveSource resolves a source path given on the command line to an
// absolute path and the directory holding it. The path must name an
// existing regular file.
func ResolveSource(relPath string) (fullPath string, dir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		return "", "", err
	}
	if !info.Mode().IsRegular() {
		return "", "", fmt.Errorf("%s is not a regular file", fullPath)
	}
	return fullPath, filepath.Dir(fullPath), nil
}

// DefaultOutputPath swaps the source extension for ext, e.g.
// ("stats/run.txt", ".scm") -> "stats/run.scm".
func DefaultOutputPath(srcPath, ext string) string {
	cur := filepath.Ext(srcPath)
	if cur == "" || cur == ext {
		return srcPath + ext
	}
	return strings.TrimSuffix(srcPath, cur) + ext
}
