package filesystem

import (
	"os"
	"strconv"
	"time"

	"emperror.dev/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/goccy/go-json"
)

type EntryType int

const (
	TypeUnknown EntryType = iota
	TypeFile
	TypeDirectory
	TypeSymlink
	TypeSocket
)

func (t EntryType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeSocket:
		return "socket"
	}
	return "unknown"
}

// Entry is a snapshot of a single filesystem entry. Entries returned by Each
// and EachR only have Path and Type populated.
type Entry struct {
	Path Path
	Type EntryType
	// Permission bits including the setuid, setgid and sticky bits.
	Mode       os.FileMode
	AccessTime time.Time
	ModTime    time.Time
}

// typeOf maps a mode to the entry type used for dispatching. Named pipes and
// device nodes are not supported and map to TypeUnknown.
func typeOf(m os.FileMode) EntryType {
	switch {
	case m&os.ModeSymlink != 0:
		return TypeSymlink
	case m.IsDir():
		return TypeDirectory
	case m&os.ModeSocket != 0:
		return TypeSocket
	case m.IsRegular():
		return TypeFile
	}
	return TypeUnknown
}

const modeBits = os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky

func newEntry(p Path, fi os.FileInfo) Entry {
	return Entry{
		Path:       p,
		Type:       typeOf(fi.Mode()),
		Mode:       fi.Mode() & modeBits,
		AccessTime: atime(fi),
		ModTime:    fi.ModTime(),
	}
}

// Lstat returns the entry at the given path without following a final
// symbolic link.
func Lstat(p string) (Entry, error) {
	fi, err := os.Lstat(p)
	if err != nil {
		return Entry{}, errors.WithStack(err)
	}
	return newEntry(New(p), fi), nil
}

// Stat returns the entry at the given path, following symbolic links.
func Stat(p string) (Entry, error) {
	fi, err := os.Stat(p)
	if err != nil {
		return Entry{}, errors.WithStack(err)
	}
	return newEntry(New(p), fi), nil
}

// Details describes an entry in more depth than an Entry, including the size
// and the detected MIME type of the contents.
type Details struct {
	Entry
	Size       int64
	ChangeTime time.Time
	Mimetype   string
	// The target of a symbolic link.
	Target string
}

func (d *Details) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string `json:"name"`
		Path     string `json:"path"`
		Type     string `json:"type"`
		Changed  string `json:"changed"`
		Accessed string `json:"accessed"`
		Modified string `json:"modified"`
		ModeBits string `json:"mode_bits"`
		Size     int64  `json:"size"`
		Mime     string `json:"mime"`
		Target   string `json:"target,omitempty"`
	}{
		Name:     d.Path.Base(),
		Path:     d.Path.String(),
		Type:     d.Type.String(),
		Changed:  d.ChangeTime.Format(time.RFC3339),
		Accessed: d.AccessTime.Format(time.RFC3339),
		Modified: d.ModTime.Format(time.RFC3339),
		ModeBits: strconv.FormatUint(uint64(d.Mode&os.ModePerm), 8),
		Size:     d.Size,
		Mime:     d.Mimetype,
		Target:   d.Target,
	})
}

// Inspect returns the details of the entry at the given path along with the
// MIME type of its contents. Symbolic links are described, not followed.
func Inspect(p string) (*Details, error) {
	fi, err := os.Lstat(p)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	d := &Details{
		Entry:      newEntry(New(p), fi),
		Size:       fi.Size(),
		ChangeTime: ctime(fi),
	}
	switch d.Type {
	case TypeDirectory:
		d.Mimetype = "inode/directory"
	case TypeSymlink:
		d.Mimetype = "inode/symlink"
		if d.Target, err = os.Readlink(p); err != nil {
			return nil, errors.WithStack(err)
		}
	case TypeSocket:
		d.Mimetype = "inode/socket"
	case TypeFile:
		m, err := mimetype.DetectFile(p)
		if err != nil {
			return nil, errors.Wrap(err, "filesystem: failed to detect mimetype")
		}
		d.Mimetype = m.String()
	default:
		d.Mimetype = "application/octet-stream"
	}
	return d, nil
}
