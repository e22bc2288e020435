// Package catalog holds the Album and Track sample data the demos run their
// pipelines over.
package catalog

import (
	"fmt"

	"github.com/charmingruby/lambdalab/seq"
)

// Track is one song. Length is in seconds.
type Track struct {
	Name   string
	Length int
}

// String renders the track for console output.
func (t Track) String() string {
	return fmt.Sprintf("Track{name=%s, length=%d}", t.Name, t.Length)
}

// Album is a named, ordered list of tracks.
type Album struct {
	Name   string
	Tracks []Track
}

// Welcome is the greeting every album shares. No album type overrides it.
func (a Album) Welcome() string {
	return "Welcome to " + a.Name
}

// TrackSeq iterates the album's tracks without copying them.
func (a Album) TrackSeq() seq.Iterator[Track] {
	return seq.FromSlice(a.Tracks)
}

// Albums returns the fixed sample catalog. Every call builds new slices, so
// callers may modify the result freely.
func Albums() []Album {
	return []Album{
		{
			Name: "Blue Train",
			Tracks: []Track{
				{Name: "Blue Train", Length: 643},
				{Name: "Moment's Notice", Length: 551},
				{Name: "Locomotion", Length: 434},
			},
		},
		{
			Name: "Interludes",
			Tracks: []Track{
				{Name: "Prelude", Length: 42},
				{Name: "Coda", Length: 58},
			},
		},
		{
			Name: "Giant Steps",
			Tracks: []Track{
				{Name: "Giant Steps", Length: 286},
				{Name: "Cousin Mary", Length: 346},
				{Name: "Naima", Length: 261},
				{Name: "Mr. P.C.", Length: 420},
			},
		},
	}
}
