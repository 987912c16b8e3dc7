package web

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go0183/internal/nmea"
)

// Status accumulates per-receiver parse counters and the most recent
// position view. It is safe for concurrent use.
type Status struct {
	mu        sync.RWMutex
	startTime time.Time
	receivers map[string]*receiverStatus
}

type receiverStatus struct {
	accepted   uint64
	rejected   map[nmea.Code]uint64
	lastFix    *FixSnapshot
	lastUpdate time.Time
}

// NewStatus creates a new status tracker.
func NewStatus() *Status {
	return &Status{
		startTime: time.Now().UTC(),
		receivers: make(map[string]*receiverStatus),
	}
}

// RecordResult counts one parse outcome for the named receiver.
func (s *Status) RecordResult(receiver string, code nmea.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.receiver(receiver)
	r.lastUpdate = time.Now().UTC()
	if code == nmea.CodeOK {
		r.accepted++
		return
	}
	r.rejected[code]++
}

// RecordFix stores the most recent position view for the named receiver.
// States without a usable position are ignored.
func (s *Status) RecordFix(receiver string, g nmea.GNSSState) {
	fix := NewFixSnapshot(g)
	if fix == nil {
		return
	}

	s.mu.Lock()
	s.receiver(receiver).lastFix = fix
	s.mu.Unlock()
}

// receiver returns the named entry, creating it on first use. The caller
// must hold mu.
func (s *Status) receiver(name string) *receiverStatus {
	r, ok := s.receivers[name]
	if !ok {
		r = &receiverStatus{rejected: make(map[nmea.Code]uint64)}
		s.receivers[name] = r
	}
	return r
}

// Totals returns the accepted and rejected sentence counts summed over all
// receivers.
func (s *Status) Totals() (accepted, rejected uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.receivers {
		accepted += r.accepted
		for _, n := range r.rejected {
			rejected += n
		}
	}
	return accepted, rejected
}

// StatusSnapshot is the JSON document served at /api/status.
type StatusSnapshot struct {
	Service   string             `json:"service"`
	NowUTC    string             `json:"now_utc"`
	UptimeSec int64              `json:"uptime_sec"`
	Receivers []ReceiverSnapshot `json:"receivers"`
}

// ReceiverSnapshot is the status view of one receiver.
type ReceiverSnapshot struct {
	Name          string            `json:"name"`
	Accepted      uint64            `json:"accepted"`
	Rejected      map[string]uint64 `json:"rejected,omitempty"`
	LastFix       *FixSnapshot      `json:"last_fix,omitempty"`
	LastUpdateUTC string            `json:"last_update_utc,omitempty"`
}

// FixSnapshot is a small, UI-friendly view of the last position fix.
// Values the receiver has not reported are omitted.
type FixSnapshot struct {
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Altitude   *float64 `json:"altitude_m,omitempty"`
	SpeedKnots *float64 `json:"speed_knots,omitempty"`
	CourseTrue *float64 `json:"course_true,omitempty"`
	Satellites *int     `json:"satellites,omitempty"`
	HDOP       *float64 `json:"hdop,omitempty"`
	Quality    *int     `json:"quality,omitempty"`
	TimeUTC    string   `json:"time_utc,omitempty"`
}

// NewFixSnapshot builds the position view of a GNSS state. It returns nil
// when the state has no usable position.
func NewFixSnapshot(g nmea.GNSSState) *FixSnapshot {
	if !g.HasFix {
		return nil
	}

	fix := &FixSnapshot{
		Latitude:  g.Latitude.Value,
		Longitude: g.Longitude.Value,
	}
	if g.Altitude.Valid {
		v := g.Altitude.Value
		fix.Altitude = &v
	}
	if g.SpeedKnots.Valid {
		v := g.SpeedKnots.Value
		fix.SpeedKnots = &v
	}
	if g.CourseTrue.Valid {
		v := g.CourseTrue.Value
		fix.CourseTrue = &v
	}
	if g.SatellitesUsed.Valid {
		v := g.SatellitesUsed.Value
		fix.Satellites = &v
	}
	if g.HDOP.Valid {
		v := g.HDOP.Value
		fix.HDOP = &v
	}
	if g.FixQuality.Valid {
		v := g.FixQuality.Value
		fix.Quality = &v
	}
	if g.Time.Valid {
		fix.TimeUTC = fmt.Sprintf("%02d:%02d:%02d.%03d",
			g.Time.Hour, g.Time.Minute, g.Time.Second, g.Time.Millisecond)
	}
	return fix
}

// Snapshot returns the current status view, receivers sorted by name.
func (s *Status) Snapshot(nowUTC time.Time) StatusSnapshot {
	if nowUTC.IsZero() {
		nowUTC = time.Now().UTC()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := StatusSnapshot{
		Service:   "go0183",
		NowUTC:    nowUTC.UTC().Format(time.RFC3339Nano),
		UptimeSec: int64(nowUTC.Sub(s.startTime).Seconds()),
		Receivers: make([]ReceiverSnapshot, 0, len(s.receivers)),
	}

	for name, r := range s.receivers {
		rs := ReceiverSnapshot{
			Name:     name,
			Accepted: r.accepted,
		}
		if len(r.rejected) > 0 {
			rs.Rejected = make(map[string]uint64, len(r.rejected))
			for code, n := range r.rejected {
				rs.Rejected[code.String()] = n
			}
		}
		if r.lastFix != nil {
			fix := *r.lastFix
			rs.LastFix = &fix
		}
		if !r.lastUpdate.IsZero() {
			rs.LastUpdateUTC = r.lastUpdate.Format(time.RFC3339Nano)
		}
		snap.Receivers = append(snap.Receivers, rs)
	}

	sort.Slice(snap.Receivers, func(i, j int) bool {
		return snap.Receivers[i].Name < snap.Receivers[j].Name
	})
	return snap
}
