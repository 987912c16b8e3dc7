package nmea

// MaxRouteWaypoints caps the RTE waypoint list assembled across a burst.
const MaxRouteWaypoints = 16

// WaypointState is the waypoint and route state of one source.
type WaypointState struct {
	Latitude             Float // last reported waypoint position
	Longitude            Float
	ID                   Text
	RouteTotal           Int  // sentences in the RTE burst
	RouteNumber          Int  // last RTE sentence number seen
	RouteType            Char // 'c' complete route, 'w' working route
	RouteName            Text
	RouteWaypoints       [MaxRouteWaypoints]Text
	RouteWaypointCount   Int // updates when an RTE burst completes
	ArrivalCircleEntered Char
	PerpendicularPassed  Char
	ArrivalRadius        Float // nautical miles
	ArrivalWaypoint      Text
	BearingTrue          Float // waypoint to waypoint (BWW)
	BearingMagnetic      Float
	BearingTo            Text
	BearingFrom          Text

	rteExpected int // sentences in the burst being assembled
	rteNext     int
	rteCount    int
}

// applyWPL maps a WPL waypoint location sentence: latitude pair (1, 2),
// longitude pair (3, 4), identifier (5).
func applyWPL(c *Context, t *TokenSet) {
	w := c.waypoint
	w.Latitude.setCoordinate(t.Field(1), t.Field(2))
	w.Longitude.setCoordinate(t.Field(3), t.Field(4))
	w.ID.set(t.Field(5))
}

// applyRTE maps one sentence of an RTE route burst. Like GSV, the waypoint
// list count updates only when the burst completes in order.
//
//	1: sentences in burst  2: sentence number  3: route type
//	4: route name          5..: waypoint identifiers
func applyRTE(c *Context, t *TokenSet) {
	w := c.waypoint
	total, err1 := parseInt(t.Field(1))
	num, err2 := parseInt(t.Field(2))
	if err1 != nil || err2 != nil || total < 1 || num < 1 || num > total {
		return
	}
	w.RouteTotal.set(t.Field(1))
	w.RouteNumber.set(t.Field(2))
	w.RouteType.set(t.Field(3))
	w.RouteName.set(t.Field(4))
	if num == 1 {
		w.rteExpected = total
		w.rteNext = 1
		w.rteCount = 0
	}
	if total != w.rteExpected || num != w.rteNext {
		w.rteExpected = 0
		return
	}
	for i := 5; i < t.Count() && w.rteCount < MaxRouteWaypoints; i++ {
		if w.RouteWaypoints[w.rteCount].set(t.Field(i)) {
			w.rteCount++
		}
	}
	w.rteNext++
	if num == w.rteExpected {
		w.RouteWaypointCount.Value, w.RouteWaypointCount.Valid = w.rteCount, true
		w.rteExpected = 0
	}
}

// applyAAM maps an AAM arrival alarm sentence: circle entered (1),
// perpendicular passed (2), circle radius (3), waypoint (5).
func applyAAM(c *Context, t *TokenSet) {
	w := c.waypoint
	w.ArrivalCircleEntered.set(t.Field(1))
	w.PerpendicularPassed.set(t.Field(2))
	w.ArrivalRadius.set(t.Field(3))
	w.ArrivalWaypoint.set(t.Field(5))
}

// applyBWW maps a BWW waypoint-to-waypoint bearing sentence: true bearing
// (1), magnetic bearing (3), destination (5) and origin (6) waypoints.
func applyBWW(c *Context, t *TokenSet) {
	w := c.waypoint
	w.BearingTrue.set(t.Field(1))
	w.BearingMagnetic.set(t.Field(3))
	w.BearingTo.set(t.Field(5))
	w.BearingFrom.set(t.Field(6))
}
