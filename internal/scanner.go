package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// ScanSessions returns the sessions under root, most recently updated first.
// It never fails: a missing or unreadable session tree yields an empty slice.
func ScanSessions(root string) []SessionRecord {
	records, err := LoadSessions(root)
	if err != nil {
		if !errors.Is(err, ErrNoFeatureDir) {
			LogDebug("Ignoring unreadable session tree: %v", err)
		}
		return []SessionRecord{}
	}
	return records
}

// LoadSessions scans root like ScanSessions but reports why the session tree
// could not be read. Problems with individual marker files are not errors;
// they only leave that record's headline empty.
func LoadSessions(root string) ([]SessionRecord, error) {
	featureDir := FeatureDir(root)

	info, err := os.Stat(featureDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoFeatureDir
		}
		return nil, &ScanError{Path: featureDir, Op: "stat", Err: err}
	}
	if !info.IsDir() {
		return nil, ErrNoFeatureDir
	}

	entries, err := os.ReadDir(featureDir)
	if err != nil {
		return nil, &ScanError{Path: featureDir, Op: "readdir", Err: err}
	}

	records := make([]SessionRecord, 0, len(entries))
	for _, entry := range entries {
		if !isSessionDir(featureDir, entry) {
			continue
		}
		records = append(records, readSession(filepath.Join(featureDir, entry.Name())))
	}

	SortByFreshness(records)
	LogDebug("Found %d session(s) in %s", len(records), featureDir)

	return records, nil
}

// SortByFreshness orders records most recent first. Records without a
// freshness sort last; ties keep their current relative order.
func SortByFreshness(records []SessionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Freshness, records[j].Freshness
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}

// TopSessions returns at most max records; max <= 0 means no limit
func TopSessions(records []SessionRecord, max int) []SessionRecord {
	if max <= 0 || len(records) <= max {
		return records
	}
	return records[:max]
}

// isSessionDir follows symlinks so a linked session directory still counts
func isSessionDir(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

func readSession(dir string) SessionRecord {
	record := SessionRecord{Name: filepath.Base(dir)}

	currentPath := filepath.Join(dir, CurrentFile)
	currentInfo, err := os.Stat(currentPath)
	record.HasCurrent = err == nil

	statusInfo, err := os.Stat(filepath.Join(dir, StatusFile))
	record.HasStatus = err == nil

	switch {
	case record.HasCurrent:
		modTime := currentInfo.ModTime()
		record.Freshness = &modTime
	case record.HasStatus:
		modTime := statusInfo.ModTime()
		record.Freshness = &modTime
	}

	if record.HasCurrent {
		headline, err := ReadHeadline(currentPath)
		if err != nil {
			LogDebug("%v", &MarkerError{Session: record.Name, Path: currentPath, Err: err})
		}
		record.Headline = headline
	}

	return record
}

// ReadHeadline reads a CURRENT.md file and returns its "Right Now" line
func ReadHeadline(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return ExtractHeadline(string(data)), nil
}

// ExtractHeadline returns the trimmed line following the first line equal to
// "## Right Now". It returns "" when the heading is missing or is the last line.
func ExtractHeadline(content string) string {
	lines := splitLines(content)
	for i, line := range lines {
		if strings.TrimSpace(line) != RightNowHeading {
			continue
		}
		if i+1 < len(lines) {
			return strings.TrimSpace(lines[i+1])
		}
		return ""
	}
	return ""
}

// splitLines accepts \n, \r\n and \r endings. A final line terminator does
// not start another (empty) line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
