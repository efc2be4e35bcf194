// Package score reads score manifests: TOML files that list the measures,
// chords and notes of a single staff as plain data.
//
// A manifest looks like this:
//
//	title = "Scale"
//
//	[layout]
//	width = 600
//
//	[[measure]]
//	clef = true
//
//	  [[measure.chord]]
//	  duration = "quarter"
//
//	    [[measure.chord.note]]
//	    index = 9
//
//	  [[measure.chord]]
//	  duration = "half"
//	  dotted = true
//	  stem = "down"
//
//	    [[measure.chord.note]]
//	    index = 8
//	    accidental = "sharp"
//
// Note indices count diatonic steps down from the top staff line, so 0 is
// the top line, 8 the bottom line and 4 the middle line.
package score
