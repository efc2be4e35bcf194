// Package measure provides a concrete [engrave.Measure]: a bar of chords on
// a five-line staff.
//
// Chord spacing is fixed when the measure is built. Each chord advances by
// the widest accidental it carries, one head width, a head width more when
// seconds force a displaced head, the dot offset for dotted values and the
// configured minimum spacing. Row slack handed to [Measure.Render] is split
// evenly after each chord.
package measure
