//go:build windows

package input

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetLastInputInfo = user32.NewProc("GetLastInputInfo")
	procGetTickCount64   = kernel32.NewProc("GetTickCount64")
)

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

// osIdleDuration returns how long the user has been idle on Windows.
// GetLastInputInfo covers keyboard and mouse activity.
func osIdleDuration() time.Duration {
	var info lastInputInfo
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, _ := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return 0 // API failed, assume active
	}

	// dwTime is a 32-bit tick count; compare in uint32 so the 49-day
	// wraparound cancels out.
	tick, _, _ := procGetTickCount64.Call()
	elapsed := uint32(tick) - info.dwTime
	return time.Duration(elapsed) * time.Millisecond
}
