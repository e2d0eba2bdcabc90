package system

import (
	"runtime"

	"emperror.dev/errors"
	"golang.org/x/sys/unix"
)

type Information struct {
	Version       string `json:"version"`
	KernelVersion string `json:"kernel_version"`
	Architecture  string `json:"architecture"`
	OS            string `json:"os"`
	CpuCount      int    `json:"cpu_count"`
}

func GetSystemInformation() (*Information, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return nil, errors.Wrap(err, "system: failed to read kernel information")
	}

	s := &Information{
		Version:       Version,
		KernelVersion: unix.ByteSliceToString(u.Release[:]),
		Architecture:  runtime.GOARCH,
		OS:            runtime.GOOS,
		CpuCount:      runtime.NumCPU(),
	}

	return s, nil
}
