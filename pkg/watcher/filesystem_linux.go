//go:build linux

package watcher

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Superblock magic numbers from statfs(2).
const (
	nfsSuperMagic  = 0x6969
	smbSuperMagic  = 0x517b
	smb2SuperMagic = 0xfe534d42
	cifsSuperMagic = 0xff534d42
	fuseSuperMagic = 0x65735546
)

func detectPlatformFSType(path string) FilesystemType {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return FSTypeUnknown
	}

	switch uint32(st.Type) {
	case nfsSuperMagic:
		return FSTypeNFS
	case smbSuperMagic, smb2SuperMagic, cifsSuperMagic:
		return FSTypeSMB
	case fuseSuperMagic:
		if isSSHFSMount(path) {
			return FSTypeSSHFS
		}
		return FSTypeFUSE
	default:
		return FSTypeLocal
	}
}

// isSSHFSMount reports whether the longest mount point containing path is
// an sshfs mount. All FUSE filesystems share one superblock magic, so the
// mount table is the only place the concrete driver shows up.
func isSSHFSMount(path string) bool {
	f, err := os.Open("/proc/self/mounts")
	if err != nil {
		return false
	}
	defer f.Close()

	var (
		bestLen   int
		bestIsSSH bool
	)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			continue
		}
		mountPoint, fsType := fields[1], fields[2]
		if !strings.HasPrefix(path, mountPoint) {
			continue
		}
		if len(mountPoint) > bestLen {
			bestLen = len(mountPoint)
			bestIsSSH = strings.Contains(fsType, "sshfs")
		}
	}

	return bestIsSSH
}
