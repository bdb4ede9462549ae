package engine

import "time"

// span is the signed distance between two clocks. time.Time.Sub saturates after
// about 292 years, far less than the distance between the sentinel boundaries.
type span struct {
	sec  int64
	nsec int64
}

func between(later, earlier time.Time) span {
	s := span{
		sec:  later.Unix() - earlier.Unix(),
		nsec: int64(later.Nanosecond() - earlier.Nanosecond()),
	}
	if s.nsec < 0 {
		s.sec--
		s.nsec += int64(time.Second)
	}
	return s
}

func (s span) less(o span) bool {
	if s.sec != o.sec {
		return s.sec < o.sec
	}
	return s.nsec < o.nsec
}
