//go:build !linux

package watcher

// Superblock probing is only wired up on Linux. Everywhere else assume a
// local filesystem and let fsnotify prove itself.
func detectPlatformFSType(string) FilesystemType {
	return FSTypeLocal
}
