package nmea

// RadarState is the tracked-target and own-ship display state of a radar
// source. Target fields hold the most recently reported target.
type RadarState struct {
	TargetNumber           Int
	TargetDistance         Float // nautical miles
	TargetBearing          Float // degrees
	TargetBearingReference Char  // 'T' true, 'R' relative
	TargetSpeed            Float // knots
	TargetCourse           Float // degrees
	TargetCourseReference  Char
	ClosestApproach        Float // CPA distance, nautical miles
	TimeToClosestApproach  Float // minutes, negative when past
	TargetUnits            Char  // 'K', 'N' or 'S' for speed/distance fields
	TargetName             Text
	TargetStatus           Char // 'L' lost, 'Q' acquiring, 'T' tracking
	TargetLatitude         Float
	TargetLongitude        Float
	TargetTime             TimeOfDay
	Acquisition            Char // 'A' automatic, 'M' manual
	CursorRange            Float
	CursorBearing          Float
	RangeScale             Float
	RangeUnits             Char
	DisplayRotation        Char // 'C' course up, 'H' head up, 'N' north up
	OwnHeading             Float
	OwnCourse              Float
	OwnSpeed               Float
	CurrentSet             Float // direction of current, degrees
	CurrentDrift           Float // speed of current, knots
}

// applyTTM maps a TTM tracked-target sentence.
//
//	1: target number  2: distance      3: bearing     4: bearing reference
//	5: speed          6: course        7: course reference
//	8: cpa distance   9: time to cpa  10: units      11: name
//	12: status       14: utc time    15: acquisition
func applyTTM(c *Context, t *TokenSet) {
	r := c.radar
	r.TargetNumber.set(t.Field(1))
	r.TargetDistance.set(t.Field(2))
	r.TargetBearing.set(t.Field(3))
	r.TargetBearingReference.set(t.Field(4))
	r.TargetSpeed.set(t.Field(5))
	r.TargetCourse.set(t.Field(6))
	r.TargetCourseReference.set(t.Field(7))
	r.ClosestApproach.set(t.Field(8))
	r.TimeToClosestApproach.set(t.Field(9))
	r.TargetUnits.set(t.Field(10))
	r.TargetName.set(t.Field(11))
	r.TargetStatus.set(t.Field(12))
	r.TargetTime.set(t.Field(14))
	r.Acquisition.set(t.Field(15))
}

// applyTLL maps a TLL target position sentence: target number (1),
// latitude pair (2, 3), longitude pair (4, 5), name (6), time (7),
// status (8).
func applyTLL(c *Context, t *TokenSet) {
	r := c.radar
	r.TargetNumber.set(t.Field(1))
	r.TargetLatitude.setCoordinate(t.Field(2), t.Field(3))
	r.TargetLongitude.setCoordinate(t.Field(4), t.Field(5))
	r.TargetName.set(t.Field(6))
	r.TargetTime.set(t.Field(7))
	r.TargetStatus.set(t.Field(8))
}

// applyRSD maps an RSD radar display sentence: cursor range (9) and
// bearing (10), range scale (11), range units (12), rotation (13).
func applyRSD(c *Context, t *TokenSet) {
	r := c.radar
	r.CursorRange.set(t.Field(9))
	r.CursorBearing.set(t.Field(10))
	r.RangeScale.set(t.Field(11))
	r.RangeUnits.set(t.Field(12))
	r.DisplayRotation.set(t.Field(13))
}

// applyOSD maps an OSD own-ship sentence: heading (1), course (3), speed
// (5), current set (7) and drift (8).
func applyOSD(c *Context, t *TokenSet) {
	r := c.radar
	r.OwnHeading.set(t.Field(1))
	r.OwnCourse.set(t.Field(3))
	r.OwnSpeed.set(t.Field(5))
	r.CurrentSet.set(t.Field(7))
	r.CurrentDrift.set(t.Field(8))
}
