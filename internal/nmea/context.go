// Package nmea is a zero-allocation NMEA-0183 sentence decoding engine.
// Sentences are parsed into per-source Contexts whose module states merge
// decoded fields across sentence types with sticky semantics: a field only
// changes when a sentence carries a usable value for it.
package nmea

// Context holds the decoded state of one data source. Module sub-states
// exist only for the modules enabled in the Capability the Context was
// built from, so memory stays proportional to configuration. A Context is
// not safe for concurrent use; distinct Contexts share nothing and may be
// driven from different goroutines without coordination.
type Context struct {
	capability Capability
	disabled   map[string]bool
	onError    ErrorFunc

	gnss       *GNSSState
	ais        *AISState
	navigation *NavigationState
	heading    *HeadingState
	sensor     *SensorState
	radar      *RadarState
	safety     *SafetyState
	comm       *CommState
	system     *SystemState
	attitude   *AttitudeState
	waypoint   *WaypointState
	misc       *MiscState
}

// NewContext builds the Context for one data source. It fails with
// ErrInvalidConfig when c is self-contradictory: no known module enabled,
// an identifier in Disabled that no build knows, or a disabled identifier
// whose owning module is off.
func NewContext(c Capability) (*Context, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ctx := &Context{capability: c}
	if len(c.Disabled) > 0 {
		ctx.disabled = make(map[string]bool, len(c.Disabled))
		for _, id := range c.Disabled {
			ctx.disabled[id] = true
		}
	}
	if c.Modules&ModuleGNSS != 0 {
		ctx.gnss = &GNSSState{}
	}
	if c.Modules&ModuleAIS != 0 {
		ctx.ais = &AISState{}
	}
	if c.Modules&ModuleNavigation != 0 {
		ctx.navigation = &NavigationState{}
	}
	if c.Modules&ModuleHeading != 0 {
		ctx.heading = &HeadingState{}
	}
	if c.Modules&ModuleSensor != 0 {
		ctx.sensor = &SensorState{}
	}
	if c.Modules&ModuleRadar != 0 {
		ctx.radar = &RadarState{}
	}
	if c.Modules&ModuleSafety != 0 {
		ctx.safety = &SafetyState{}
	}
	if c.Modules&ModuleComm != 0 {
		ctx.comm = &CommState{}
	}
	if c.Modules&ModuleSystem != 0 {
		ctx.system = &SystemState{}
	}
	if c.Modules&ModuleAttitude != 0 {
		ctx.attitude = &AttitudeState{}
	}
	if c.Modules&ModuleWaypoint != 0 {
		ctx.waypoint = &WaypointState{}
	}
	if c.Modules&ModuleMisc != 0 {
		ctx.misc = &MiscState{}
	}
	return ctx, nil
}

// Capability returns the descriptor the Context was built from.
func (c *Context) Capability() Capability { return c.capability }

// SetErrorFunc installs a failure observer. fn is invoked synchronously
// from Parse on every failure path and never on success; it must not call
// back into the Context. Passing nil removes the observer.
func (c *Context) SetErrorFunc(fn ErrorFunc) { c.onError = fn }

// Reset zeroes every module state while keeping the capability, the
// disabled set and the error observer.
func (c *Context) Reset() {
	if c.gnss != nil {
		*c.gnss = GNSSState{}
	}
	if c.ais != nil {
		*c.ais = AISState{}
	}
	if c.navigation != nil {
		*c.navigation = NavigationState{}
	}
	if c.heading != nil {
		*c.heading = HeadingState{}
	}
	if c.sensor != nil {
		*c.sensor = SensorState{}
	}
	if c.radar != nil {
		*c.radar = RadarState{}
	}
	if c.safety != nil {
		*c.safety = SafetyState{}
	}
	if c.comm != nil {
		*c.comm = CommState{}
	}
	if c.system != nil {
		*c.system = SystemState{}
	}
	if c.attitude != nil {
		*c.attitude = AttitudeState{}
	}
	if c.waypoint != nil {
		*c.waypoint = WaypointState{}
	}
	if c.misc != nil {
		*c.misc = MiscState{}
	}
}

// Parse runs one complete sentence through the decode pipeline: framing,
// checksum, tokenization, capability-gated dispatch, field mapping. Any
// failure leaves the Context untouched, notifies the error observer and
// returns one of the package sentinels. Parse borrows sentence and scratch
// only for the duration of the call and never blocks or allocates.
func (c *Context) Parse(sentence []byte, scratch *TokenSet) error {
	if c == nil {
		return ErrNilParam
	}
	if sentence == nil || scratch == nil {
		return c.fail(ErrNilParam)
	}
	addr, err := parseAddress(sentence)
	if err != nil {
		return c.fail(err)
	}
	if err := validateChecksum(sentence, c.capability.ValidateChecksums); err != nil {
		return c.fail(err)
	}
	if err := tokenize(sentence, scratch); err != nil {
		return c.fail(err)
	}
	apply, err := c.dispatch(addr.id)
	if err != nil {
		return c.fail(err)
	}
	apply(c, scratch)
	return nil
}

// fail notifies the observer and passes err through unchanged.
func (c *Context) fail(err error) error {
	if c.onError != nil {
		if pe, ok := err.(*ParseError); ok {
			c.onError(pe.Code, pe.Msg)
		}
	}
	return err
}

// GNSS returns a copy of the GNSS module state, or ErrNoData when the
// module is not enabled for this Context.
func (c *Context) GNSS() (GNSSState, error) {
	if c.gnss == nil {
		return GNSSState{}, ErrNoData
	}
	return *c.gnss, nil
}

// AIS returns a copy of the AIS module state, or ErrNoData when the module
// is not enabled for this Context.
func (c *Context) AIS() (AISState, error) {
	if c.ais == nil {
		return AISState{}, ErrNoData
	}
	return *c.ais, nil
}

// Navigation returns a copy of the Navigation module state, or ErrNoData
// when the module is not enabled for this Context.
func (c *Context) Navigation() (NavigationState, error) {
	if c.navigation == nil {
		return NavigationState{}, ErrNoData
	}
	return *c.navigation, nil
}

// Heading returns a copy of the Heading module state, or ErrNoData when
// the module is not enabled for this Context.
func (c *Context) Heading() (HeadingState, error) {
	if c.heading == nil {
		return HeadingState{}, ErrNoData
	}
	return *c.heading, nil
}

// Sensor returns a copy of the Sensor module state, or ErrNoData when the
// module is not enabled for this Context.
func (c *Context) Sensor() (SensorState, error) {
	if c.sensor == nil {
		return SensorState{}, ErrNoData
	}
	return *c.sensor, nil
}

// Radar returns a copy of the Radar module state, or ErrNoData when the
// module is not enabled for this Context.
func (c *Context) Radar() (RadarState, error) {
	if c.radar == nil {
		return RadarState{}, ErrNoData
	}
	return *c.radar, nil
}

// Safety returns a copy of the Safety module state, or ErrNoData when the
// module is not enabled for this Context.
func (c *Context) Safety() (SafetyState, error) {
	if c.safety == nil {
		return SafetyState{}, ErrNoData
	}
	return *c.safety, nil
}

// Comm returns a copy of the Comm module state, or ErrNoData when the
// module is not enabled for this Context.
func (c *Context) Comm() (CommState, error) {
	if c.comm == nil {
		return CommState{}, ErrNoData
	}
	return *c.comm, nil
}

// System returns a copy of the System module state, or ErrNoData when the
// module is not enabled for this Context.
func (c *Context) System() (SystemState, error) {
	if c.system == nil {
		return SystemState{}, ErrNoData
	}
	return *c.system, nil
}

// Attitude returns a copy of the Attitude module state, or ErrNoData when
// the module is not enabled for this Context.
func (c *Context) Attitude() (AttitudeState, error) {
	if c.attitude == nil {
		return AttitudeState{}, ErrNoData
	}
	return *c.attitude, nil
}

// Waypoint returns a copy of the Waypoint module state, or ErrNoData when
// the module is not enabled for this Context.
func (c *Context) Waypoint() (WaypointState, error) {
	if c.waypoint == nil {
		return WaypointState{}, ErrNoData
	}
	return *c.waypoint, nil
}

// Misc returns a copy of the Misc module state, or ErrNoData when the
// module is not enabled for this Context.
func (c *Context) Misc() (MiscState, error) {
	if c.misc == nil {
		return MiscState{}, ErrNoData
	}
	return *c.misc, nil
}
