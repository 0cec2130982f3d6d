// Package locator finds the most recent Xcode build log under a DerivedData
// directory.
package locator

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogExtension is the extension of Xcode's build activity logs.
const LogExtension = ".xcactivitylog"

// BuildLog is a located activity log.
type BuildLog struct {
	Path       string
	ModifiedAt time.Time
}

// Locator searches DerivedData for activity logs.
type Locator struct {
	// DefaultRoot is scanned, one project directory at a time, when no
	// explicit DerivedData path is given.
	DefaultRoot string
}

// New returns a Locator rooted at ~/Library/Developer/Xcode/DerivedData.
func New() *Locator {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	return &Locator{DefaultRoot: filepath.Join(home, "Library", "Developer", "Xcode", "DerivedData")}
}

// FindLatest returns the newest log modified at or after since. A zero since
// disables the filter. root is a single project's DerivedData directory; an
// empty root searches every project under DefaultRoot.
func (l *Locator) FindLatest(root string, since time.Time) (BuildLog, bool) {
	if root != "" {
		return latestInDerivedData(root, since)
	}

	entries, err := os.ReadDir(l.DefaultRoot)
	if err != nil {
		return BuildLog{}, false
	}

	var best BuildLog
	found := false
	for _, e := range entries {
		if !e.IsDir() || isHidden(e.Name()) {
			continue
		}
		candidate, ok := latestInDerivedData(filepath.Join(l.DefaultRoot, e.Name()), since)
		if ok && (!found || candidate.ModifiedAt.After(best.ModifiedAt)) {
			best = candidate
			found = true
		}
	}
	return best, found
}

// latestInDerivedData scans <dir>/Logs/Build. Ties keep the entry seen first.
func latestInDerivedData(dir string, since time.Time) (BuildLog, bool) {
	buildDir := filepath.Join(dir, "Logs", "Build")
	entries, err := os.ReadDir(buildDir)
	if err != nil {
		return BuildLog{}, false
	}

	var best BuildLog
	found := false
	for _, e := range entries {
		name := e.Name()
		if isHidden(name) || filepath.Ext(name) != LogExtension || !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		mtime := info.ModTime()
		if !since.IsZero() && mtime.Before(since) {
			continue
		}
		if !found || mtime.After(best.ModifiedAt) {
			best = BuildLog{Path: filepath.Join(buildDir, name), ModifiedAt: mtime}
			found = true
		}
	}
	return best, found
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
