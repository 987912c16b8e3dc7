package nmea

// NavigationState is the active-route guidance state: where the vessel is
// being steered, how far off track it is, and how the destination bears.
type NavigationState struct {
	Status                      Char  // 'A' data valid, 'V' warning
	CrossTrackError             Float // nautical miles
	SteerDirection              Char  // 'L' or 'R', toward the track
	OriginWaypoint              Text
	DestinationWaypoint         Text
	DestinationLatitude         Float
	DestinationLongitude        Float
	RangeToDestination          Float // nautical miles
	BearingTrue                 Float // present position to destination
	BearingMagnetic             Float
	ClosingVelocity             Float // knots
	ArrivalStatus               Char  // 'A' arrived
	ArrivalCircleEntered        Char
	PerpendicularPassed         Char
	BearingOriginToDestTrue     Float
	BearingOriginToDestMagnetic Float
	HeadingToSteer              Float
	Time                        TimeOfDay
}

// applyRMB maps an RMB recommended-minimum navigation sentence.
//
//	1: status          2: cross-track error  3: steer direction
//	4: origin wpt      5: destination wpt
//	6: dest latitude   7: n/s                8: dest longitude  9: e/w
//	10: range nm      11: bearing true      12: closing velocity
//	13: arrival status
func applyRMB(c *Context, t *TokenSet) {
	n := c.navigation
	n.Status.set(t.Field(1))
	n.CrossTrackError.set(t.Field(2))
	n.SteerDirection.set(t.Field(3))
	n.OriginWaypoint.set(t.Field(4))
	n.DestinationWaypoint.set(t.Field(5))
	n.DestinationLatitude.setCoordinate(t.Field(6), t.Field(7))
	n.DestinationLongitude.setCoordinate(t.Field(8), t.Field(9))
	n.RangeToDestination.set(t.Field(10))
	n.BearingTrue.set(t.Field(11))
	n.ClosingVelocity.set(t.Field(12))
	n.ArrivalStatus.set(t.Field(13))
}

// applyAPB maps an APB autopilot sentence.
//
//	1: status        2: status        3: cross-track error  4: steer direction
//	5: xte units     6: circle entered 7: perpendicular passed
//	8: bearing origin to dest  9: 8's reference
//	10: dest wpt    11: bearing to dest  12: 11's reference
//	13: heading to steer       14: 13's reference
func applyAPB(c *Context, t *TokenSet) {
	n := c.navigation
	n.Status.set(t.Field(1))
	n.CrossTrackError.set(t.Field(3))
	n.SteerDirection.set(t.Field(4))
	n.ArrivalCircleEntered.set(t.Field(6))
	n.PerpendicularPassed.set(t.Field(7))
	setByReference(t.Field(8), t.Field(9), &n.BearingOriginToDestTrue, &n.BearingOriginToDestMagnetic)
	n.DestinationWaypoint.set(t.Field(10))
	setByReference(t.Field(11), t.Field(12), &n.BearingTrue, &n.BearingMagnetic)
	n.HeadingToSteer.set(t.Field(13))
}

// setByReference stores value into the true or magnetic destination field
// according to a 'T'/'M' reference token.
func setByReference(value, ref []byte, trueDst, magDst *Float) {
	if len(ref) != 1 {
		return
	}
	switch ref[0] {
	case 'T':
		trueDst.set(value)
	case 'M':
		magDst.set(value)
	}
}

// applyXTE maps an XTE cross-track error sentence: status (1), error (3),
// steer direction (4).
func applyXTE(c *Context, t *TokenSet) {
	n := c.navigation
	n.Status.set(t.Field(1))
	n.CrossTrackError.set(t.Field(3))
	n.SteerDirection.set(t.Field(4))
}

// applyBOD maps a BOD origin-to-destination bearing sentence: true bearing
// (1), magnetic bearing (3), destination (5) and origin (6) waypoints.
func applyBOD(c *Context, t *TokenSet) {
	n := c.navigation
	n.BearingOriginToDestTrue.set(t.Field(1))
	n.BearingOriginToDestMagnetic.set(t.Field(3))
	n.DestinationWaypoint.set(t.Field(5))
	n.OriginWaypoint.set(t.Field(6))
}

// applyBWC maps a BWC bearing-and-distance sentence (great circle).
//
//	1: utc time  2: wpt latitude  3: n/s  4: wpt longitude  5: e/w
//	6: bearing true  8: bearing magnetic  10: range nm  12: wpt id
func applyBWC(c *Context, t *TokenSet) {
	n := c.navigation
	n.Time.set(t.Field(1))
	n.DestinationLatitude.setCoordinate(t.Field(2), t.Field(3))
	n.DestinationLongitude.setCoordinate(t.Field(4), t.Field(5))
	n.BearingTrue.set(t.Field(6))
	n.BearingMagnetic.set(t.Field(8))
	n.RangeToDestination.set(t.Field(10))
	n.DestinationWaypoint.set(t.Field(12))
}

// applyBWR maps a BWR sentence, the rhumb-line twin of BWC.
func applyBWR(c *Context, t *TokenSet) { applyBWC(c, t) }
