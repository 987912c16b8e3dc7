package nmea

import (
	"strings"
	"unsafe"
)

// Module identifies one group of related sentence identifiers that is
// enabled or disabled as a unit.
type Module uint16

// Modules understood by this build.
const (
	ModuleGNSS Module = 1 << iota
	ModuleAIS
	ModuleNavigation
	ModuleHeading
	ModuleSensor
	ModuleRadar
	ModuleSafety
	ModuleComm
	ModuleSystem
	ModuleAttitude
	ModuleWaypoint
	ModuleMisc
)

// ModuleAll enables every module of this build.
const ModuleAll = ModuleGNSS | ModuleAIS | ModuleNavigation | ModuleHeading |
	ModuleSensor | ModuleRadar | ModuleSafety | ModuleComm | ModuleSystem |
	ModuleAttitude | ModuleWaypoint | ModuleMisc

// String returns the module name, or a '|'-joined list for a combined mask.
func (m Module) String() string {
	switch m {
	case ModuleGNSS:
		return "GNSS"
	case ModuleAIS:
		return "AIS"
	case ModuleNavigation:
		return "Navigation"
	case ModuleHeading:
		return "Heading"
	case ModuleSensor:
		return "Sensor"
	case ModuleRadar:
		return "Radar"
	case ModuleSafety:
		return "Safety"
	case ModuleComm:
		return "Comm"
	case ModuleSystem:
		return "System"
	case ModuleAttitude:
		return "Attitude"
	case ModuleWaypoint:
		return "Waypoint"
	case ModuleMisc:
		return "Misc"
	}
	var b strings.Builder
	for bit := ModuleGNSS; bit <= ModuleMisc; bit <<= 1 {
		if m&bit == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(bit.String())
	}
	if b.Len() == 0 {
		return "none"
	}
	return b.String()
}

// Capability describes one Context's configuration: the enabled modules,
// the sentence identifiers that are administratively disabled, and whether
// checksums are verified. It is immutable once a Context is built from it.
type Capability struct {
	// Modules is the bitwise OR of the enabled modules.
	Modules Module

	// Disabled lists sentence identifiers (for example "GSV") that remain
	// known to dispatch but are administratively turned off.
	Disabled []string

	// ValidateChecksums controls checksum verification. Turn it off only
	// for legacy equipment that omits checksums.
	ValidateChecksums bool
}

// Validate reports whether the capability is self-consistent: at least one
// known module enabled, and every disabled identifier naming a sentence
// whose owning module is enabled.
func (c Capability) Validate() error {
	if c.Modules == 0 || c.Modules&^ModuleAll != 0 {
		return ErrInvalidConfig
	}
	for _, id := range c.Disabled {
		e, ok := sentenceTable[id]
		if !ok {
			return ErrInvalidConfig
		}
		if c.Modules&e.module == 0 {
			return ErrInvalidConfig
		}
	}
	return nil
}

// moduleTokens returns the token ceiling of one module, including the
// address token. The widest sentences per module are GSV (satellite
// blocks), VDM, RMB, HDG, XDR (transducer quadruples), TTM, ALR, DSC,
// TXT, RSA, RTE (waypoint list) and MDA.
func moduleTokens(m Module) int {
	switch m {
	case ModuleGNSS:
		return 21
	case ModuleAIS:
		return 8
	case ModuleNavigation:
		return 15
	case ModuleHeading:
		return 6
	case ModuleSensor:
		return 25
	case ModuleRadar:
		return 16
	case ModuleSafety:
		return 6
	case ModuleComm:
		return 12
	case ModuleSystem:
		return 5
	case ModuleAttitude:
		return 5
	case ModuleWaypoint:
		return 21
	case ModuleMisc:
		return 21
	}
	return 0
}

// RequiredTokens returns the TokenSet capacity a Context built from c
// needs: the maximum token count over its enabled modules. A pure function
// of configuration, never of runtime data.
func RequiredTokens(c Capability) int {
	n := 0
	for bit := ModuleGNSS; bit <= ModuleMisc; bit <<= 1 {
		if c.Modules&bit == 0 {
			continue
		}
		if t := moduleTokens(bit); t > n {
			n = t
		}
	}
	return n
}

// ContextSize returns the in-memory footprint in bytes of a Context built
// from c, for capacity planning on constrained targets. A pure function of
// configuration.
func ContextSize(c Capability) int {
	size := int(unsafe.Sizeof(Context{}))
	if c.Modules&ModuleGNSS != 0 {
		size += int(unsafe.Sizeof(GNSSState{}))
	}
	if c.Modules&ModuleAIS != 0 {
		size += int(unsafe.Sizeof(AISState{}))
	}
	if c.Modules&ModuleNavigation != 0 {
		size += int(unsafe.Sizeof(NavigationState{}))
	}
	if c.Modules&ModuleHeading != 0 {
		size += int(unsafe.Sizeof(HeadingState{}))
	}
	if c.Modules&ModuleSensor != 0 {
		size += int(unsafe.Sizeof(SensorState{}))
	}
	if c.Modules&ModuleRadar != 0 {
		size += int(unsafe.Sizeof(RadarState{}))
	}
	if c.Modules&ModuleSafety != 0 {
		size += int(unsafe.Sizeof(SafetyState{}))
	}
	if c.Modules&ModuleComm != 0 {
		size += int(unsafe.Sizeof(CommState{}))
	}
	if c.Modules&ModuleSystem != 0 {
		size += int(unsafe.Sizeof(SystemState{}))
	}
	if c.Modules&ModuleAttitude != 0 {
		size += int(unsafe.Sizeof(AttitudeState{}))
	}
	if c.Modules&ModuleWaypoint != 0 {
		size += int(unsafe.Sizeof(WaypointState{}))
	}
	if c.Modules&ModuleMisc != 0 {
		size += int(unsafe.Sizeof(MiscState{}))
	}
	return size
}
