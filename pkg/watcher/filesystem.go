package watcher

import (
	"os"
	"path/filepath"
)

// FilesystemType classifies the filesystem backing a watched path. Remote
// and FUSE-backed filesystems deliver inotify events unreliably or not at
// all, so the watcher polls on them instead.
type FilesystemType int

// Known filesystem classifications.
const (
	FSTypeUnknown FilesystemType = iota
	FSTypeLocal
	FSTypeNFS
	FSTypeSMB
	FSTypeSSHFS
	FSTypeFUSE
)

// String returns a short lowercase name for the filesystem type.
func (t FilesystemType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeNFS:
		return "nfs"
	case FSTypeSMB:
		return "smb"
	case FSTypeSSHFS:
		return "sshfs"
	case FSTypeFUSE:
		return "fuse"
	default:
		return "unknown"
	}
}

// detectFilesystemTypeFunc is swapped out in tests.
var detectFilesystemTypeFunc = DetectFilesystemType

// DetectFilesystemType classifies the filesystem backing path. If the path
// does not exist yet, the parent directory is probed instead. Detection is
// best effort: probe failures report FSTypeUnknown, which the watcher
// treats like a local filesystem.
func DetectFilesystemType(path string) FilesystemType {
	if path == "" {
		return FSTypeUnknown
	}

	probe := path
	if _, err := os.Stat(probe); err != nil {
		probe = filepath.Dir(path)
		if _, err := os.Stat(probe); err != nil {
			return FSTypeUnknown
		}
	}

	return detectPlatformFSType(probe)
}

func isRemoteFilesystem(t FilesystemType) bool {
	switch t {
	case FSTypeNFS, FSTypeSMB, FSTypeSSHFS, FSTypeFUSE:
		return true
	default:
		return false
	}
}
