package nmea

// mapperFunc applies one sentence's fields to the Context. Mappers run
// only after framing, checksum, tokenization and capability checks pass,
// so the module state they touch is always allocated.
type mapperFunc func(c *Context, t *TokenSet)

// sentenceEntry ties a sentence identifier to its owning module and mapper.
type sentenceEntry struct {
	module Module
	apply  mapperFunc
}

// sentenceTable is the complete dispatch table of this build, immutable
// package data. Per-context gating happens in dispatch.
var sentenceTable = map[string]sentenceEntry{
	// GNSS
	"GGA": {ModuleGNSS, applyGGA},
	"GLL": {ModuleGNSS, applyGLL},
	"GNS": {ModuleGNSS, applyGNS},
	"GSA": {ModuleGNSS, applyGSA},
	"GSV": {ModuleGNSS, applyGSV},
	"GST": {ModuleGNSS, applyGST},
	"RMC": {ModuleGNSS, applyRMC},
	"VTG": {ModuleGNSS, applyVTG},
	"ZDA": {ModuleGNSS, applyZDA},
	"DTM": {ModuleGNSS, applyDTM},

	// AIS transport
	"VDM": {ModuleAIS, applyVDM},
	"VDO": {ModuleAIS, applyVDO},

	// Navigation
	"RMB": {ModuleNavigation, applyRMB},
	"APB": {ModuleNavigation, applyAPB},
	"XTE": {ModuleNavigation, applyXTE},
	"BOD": {ModuleNavigation, applyBOD},
	"BWC": {ModuleNavigation, applyBWC},
	"BWR": {ModuleNavigation, applyBWR},

	// Heading
	"HDG": {ModuleHeading, applyHDG},
	"HDM": {ModuleHeading, applyHDM},
	"HDT": {ModuleHeading, applyHDT},
	"THS": {ModuleHeading, applyTHS},

	// Sensor
	"DBT": {ModuleSensor, applyDBT},
	"DPT": {ModuleSensor, applyDPT},
	"MTW": {ModuleSensor, applyMTW},
	"MWV": {ModuleSensor, applyMWV},
	"MWD": {ModuleSensor, applyMWD},
	"VHW": {ModuleSensor, applyVHW},
	"VLW": {ModuleSensor, applyVLW},
	"XDR": {ModuleSensor, applyXDR},

	// Radar
	"TTM": {ModuleRadar, applyTTM},
	"TLL": {ModuleRadar, applyTLL},
	"RSD": {ModuleRadar, applyRSD},
	"OSD": {ModuleRadar, applyOSD},

	// Safety
	"ALR": {ModuleSafety, applyALR},
	"ACK": {ModuleSafety, applyACK},

	// Comm
	"DSC": {ModuleComm, applyDSC},
	"DSE": {ModuleComm, applyDSE},
	"MSS": {ModuleComm, applyMSS},

	// System
	"TXT": {ModuleSystem, applyTXT},
	"HBT": {ModuleSystem, applyHBT},

	// Attitude
	"ROT": {ModuleAttitude, applyROT},
	"RSA": {ModuleAttitude, applyRSA},

	// Waypoint
	"WPL": {ModuleWaypoint, applyWPL},
	"RTE": {ModuleWaypoint, applyRTE},
	"AAM": {ModuleWaypoint, applyAAM},
	"BWW": {ModuleWaypoint, applyBWW},

	// Misc
	"MDA": {ModuleMisc, applyMDA},
	"VBW": {ModuleMisc, applyVBW},
	"STN": {ModuleMisc, applySTN},
}

// dispatch resolves id against the table and this Context's capability.
// Outcomes: the mapper; ErrUnknownSentence when the identifier is absent
// from the table or its owning module is not enabled here;
// ErrSentenceDisabled when the module is enabled but the identifier is
// administratively off. The distinction matters operationally: disabled is
// configuration feedback, unknown is a true no-op.
func (c *Context) dispatch(id []byte) (mapperFunc, error) {
	e, ok := sentenceTable[string(id)]
	if !ok {
		return nil, ErrUnknownSentence
	}
	if c.capability.Modules&e.module == 0 {
		return nil, ErrUnknownSentence
	}
	if c.disabled[string(id)] {
		return nil, ErrSentenceDisabled
	}
	return e.apply, nil
}
