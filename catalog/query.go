package catalog

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/charmingruby/lambdalab/option"
	"github.com/charmingruby/lambdalab/seq"
)

// AllTracks flattens albums into their tracks, album by album.
func AllTracks(albums []Album) seq.Iterator[Track] {
	return seq.FlatMap(seq.FromSlice(albums), Album.TrackSeq)
}

// LongTrackNames returns up to limit names of tracks longer than minLength.
// Tracks are only inspected until limit names are found.
func LongTrackNames(albums []Album, minLength, limit int) map[string]struct{} {
	long := seq.Filter(AllTracks(albums), func(t Track) bool { return t.Length > minLength })
	return seq.ToSet(seq.Take(seq.Map(long, trackName), limit))
}

// LongestTrack returns the track with the greatest length, the first one on a
// tie. It returns seq.ErrEmpty when albums holds no tracks.
func LongestTrack(albums []Album) (Track, error) {
	longest, err := seq.Max(AllTracks(albums), seq.Comparing(trackLength)).ToResult(seq.ErrEmpty).Unwrap()
	if err != nil {
		return Track{}, fmt.Errorf("longest track: %w", err)
	}
	return longest, nil
}

// IndexByName keys albums by name. A later album wins a duplicate name.
func IndexByName(albums []Album) map[string]Album {
	return lo.KeyBy(albums, func(a Album) string { return a.Name })
}

// FindAlbum returns the first album called name.
func FindAlbum(albums []Album, name string) option.Option[Album] {
	album, ok := lo.Find(albums, func(a Album) bool { return a.Name == name })
	return option.FromOk(album, ok)
}

// TrackNames lists the names of the album's tracks in order.
func (a Album) TrackNames() []string {
	return lo.Map(a.Tracks, func(t Track, _ int) string { return t.Name })
}

func trackName(t Track) string { return t.Name }

func trackLength(t Track) int { return t.Length }
