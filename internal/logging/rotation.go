package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// rotate removes the oldest log files in dir when the number of files
// exceeds maxFiles. It only touches files matching "fieldops_*.log".
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var logFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "fieldops_") && strings.HasSuffix(name, ".log") {
			logFiles = append(logFiles, filepath.Join(dir, name))
		}
	}
	if len(logFiles) < maxFiles {
		return nil
	}
	sort.Slice(logFiles, func(i, j int) bool {
		infoI, errI := os.Stat(logFiles[i])
		infoJ, errJ := os.Stat(logFiles[j])
		if errI != nil || errJ != nil {
			return logFiles[i] < logFiles[j]
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})
	// Keep maxFiles-1 so the file about to be created fits under the cap.
	for i := 0; i <= len(logFiles)-maxFiles; i++ {
		_ = os.Remove(logFiles[i])
	}
	return nil
}
