package internal

import (
	"path/filepath"
	"time"
)

const (
	// SessionDirName is the workflow tool's state directory under a project root
	SessionDirName = ".session"
	// FeatureDirName holds one directory per active session
	FeatureDirName = "feature"

	// CurrentFile holds free-form progress notes for a session
	CurrentFile = "CURRENT.md"
	// StatusFile holds coarser status notes for a session
	StatusFile = "STATUS.md"

	// RightNowHeading marks the line preceding a session's headline
	RightNowHeading = "## Right Now"
)

// SessionRecord describes one session directory found by a scan
type SessionRecord struct {
	Name       string     `json:"name" yaml:"name"`
	Freshness  *time.Time `json:"freshness,omitempty" yaml:"freshness,omitempty"`
	Headline   string     `json:"headline,omitempty" yaml:"headline,omitempty"`
	HasCurrent bool       `json:"has_current" yaml:"has_current"`
	HasStatus  bool       `json:"has_status" yaml:"has_status"`
}

// HasFreshness reports whether a marker file supplied a modification time
func (r SessionRecord) HasFreshness() bool {
	return r.Freshness != nil
}

// FeatureDir returns the directory that holds session directories for root
func FeatureDir(root string) string {
	return filepath.Join(root, SessionDirName, FeatureDirName)
}
