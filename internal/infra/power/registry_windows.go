//go:build windows

package power

import (
	"unsafe"

	"github.com/google/uuid"
	"golang.org/x/sys/windows"

	"github.com/planshift/planshift/internal/domain"
)

var (
	powrprof                  = windows.NewLazySystemDLL("powrprof.dll")
	procPowerEnumerate        = powrprof.NewProc("PowerEnumerate")
	procPowerReadFriendlyName = powrprof.NewProc("PowerReadFriendlyName")
	procPowerGetActiveScheme  = powrprof.NewProc("PowerGetActiveScheme")
	procPowerSetActiveScheme  = powrprof.NewProc("PowerSetActiveScheme")
)

// ACCESS_SCHEME: enumerate top-level power schemes.
const accessScheme = 16

// systemRegistry reads and writes power schemes through powrprof.dll.
type systemRegistry struct{}

// NewSystemRegistry returns the native Windows plan registry.
func NewSystemRegistry() (domain.PlanRegistry, error) {
	if err := powrprof.Load(); err != nil {
		return nil, domain.ErrUnsupported
	}
	return &systemRegistry{}, nil
}

// Plans enumerates schemes until PowerEnumerate runs out of indexes.
// Schemes whose friendly name cannot be read are skipped, matching the
// behavior of powercfg /list.
func (r *systemRegistry) Plans() ([]domain.PowerPlan, error) {
	var plans []domain.PowerPlan
	for index := uintptr(0); ; index++ {
		var g windows.GUID
		size := uint32(unsafe.Sizeof(g))
		ret, _, _ := procPowerEnumerate.Call(0, 0, 0, accessScheme, index,
			uintptr(unsafe.Pointer(&g)), uintptr(unsafe.Pointer(&size)))
		if ret != 0 { // anything but ERROR_SUCCESS ends enumeration
			break
		}
		name, err := friendlyName(&g)
		if err != nil {
			continue
		}
		plans = append(plans, domain.PowerPlan{ID: guidToUUID(g), Name: name})
	}
	return plans, nil
}

func friendlyName(g *windows.GUID) (string, error) {
	var size uint32
	ret, _, _ := procPowerReadFriendlyName.Call(0, uintptr(unsafe.Pointer(g)),
		0, 0, 0, uintptr(unsafe.Pointer(&size)))
	if ret != 0 || size == 0 {
		return "", domain.ErrPlanNotFound
	}
	buf := make([]uint16, size/2+1)
	ret, _, _ = procPowerReadFriendlyName.Call(0, uintptr(unsafe.Pointer(g)),
		0, 0, uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)))
	if ret != 0 {
		return "", domain.ErrPlanNotFound
	}
	return windows.UTF16ToString(buf), nil
}

// Active returns the current scheme from PowerGetActiveScheme.
// The returned GUID buffer is owned by the OS and released via LocalFree.
func (r *systemRegistry) Active() (uuid.UUID, error) {
	var p *windows.GUID
	ret, _, _ := procPowerGetActiveScheme.Call(0, uintptr(unsafe.Pointer(&p)))
	if ret != 0 || p == nil {
		return domain.NoPlan, domain.ErrActiveUnknown
	}
	id := guidToUUID(*p)
	windows.LocalFree(windows.Handle(unsafe.Pointer(p)))
	return id, nil
}

// SetActive requests scheme activation. Best-effort: a nonzero status
// (scheme deleted, access denied) surfaces as ErrPlanNotFound.
func (r *systemRegistry) SetActive(id uuid.UUID) error {
	g := uuidToGUID(id)
	ret, _, _ := procPowerSetActiveScheme.Call(0, uintptr(unsafe.Pointer(&g)))
	if ret != 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

// guidToUUID converts a mixed-endian Windows GUID to RFC 4122 byte order.
func guidToUUID(g windows.GUID) uuid.UUID {
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = byte(g.Data1>>24), byte(g.Data1>>16), byte(g.Data1>>8), byte(g.Data1)
	u[4], u[5] = byte(g.Data2>>8), byte(g.Data2)
	u[6], u[7] = byte(g.Data3>>8), byte(g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}

// uuidToGUID is the inverse of guidToUUID.
func uuidToGUID(u uuid.UUID) windows.GUID {
	var g windows.GUID
	g.Data1 = uint32(u[0])<<24 | uint32(u[1])<<16 | uint32(u[2])<<8 | uint32(u[3])
	g.Data2 = uint16(u[4])<<8 | uint16(u[5])
	g.Data3 = uint16(u[6])<<8 | uint16(u[7])
	copy(g.Data4[:], u[8:])
	return g
}
