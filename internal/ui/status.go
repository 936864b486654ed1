package ui

import (
	"fmt"

	"bytebeat/internal/synth"
)

// PositionText describes where playback is: the time index, the elapsed
// seconds at sampleRate, and which source is audible.
func PositionText(st synth.Status, sampleRate int) string {
	secs := 0.0
	if sampleRate > 0 {
		secs = st.Position / float64(sampleRate)
	}
	s := fmt.Sprintf("t=%d  %.1fs  %s", int64(st.Position), secs, st.State)
	if st.Source != synth.SourceNone {
		s += "  " + st.Source.String()
	}
	if st.Faults > 0 {
		s += fmt.Sprintf("  faults: %d", st.Faults)
	}
	return s
}

// StatusLine is the one-line summary the terminal front end prints.
func StatusLine(sess *synth.Session) string {
	st := sess.Engine.Status()
	l := sess.Labels()
	msg, failed := sess.Message()
	if failed {
		msg = "error: " + msg
	}
	return fmt.Sprintf("[%s] %s | speed %s | volume %s | %s | %s",
		l.Play, PositionText(st, sess.Engine.SampleRate()), l.Speed, l.Volume, l.Reverse, msg)
}
