package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lambdalab/catalog"
	"github.com/charmingruby/lambdalab/seq"
)

func TestAlbumsIsDeterministicAndFresh(t *testing.T) {
	first := catalog.Albums()
	second := catalog.Albums()
	require.Equal(t, first, second)

	first[0].Tracks[0].Name = "changed"
	assert.Equal(t, "Blue Train", catalog.Albums()[0].Tracks[0].Name)
}

func TestSampleDataValidates(t *testing.T) {
	for _, album := range catalog.Albums() {
		res := catalog.ValidateAlbum(album)
		require.True(t, res.IsValid(), "album %s: %v", album.Name, res.Errors())
		assert.Equal(t, album, res.Value())
	}
}

func TestValidateAlbumReportsEveryProblem(t *testing.T) {
	bad := catalog.Album{
		Name: " ",
		Tracks: []catalog.Track{
			{Name: "", Length: -1},
			{Name: "ok", Length: 10},
			{Name: "short", Length: -3},
		},
	}
	errs := catalog.ValidateAlbum(bad).Errors()
	require.Len(t, errs, 4)
	assert.ErrorIs(t, errs[0], catalog.ErrBlankName)
	assert.ErrorIs(t, errs[1], catalog.ErrBlankName)
	assert.ErrorIs(t, errs[2], catalog.ErrNegativeLength)
	assert.ErrorIs(t, errs[3], catalog.ErrNegativeLength)
}

func TestWelcome(t *testing.T) {
	assert.Equal(t, "Welcome to Naima", catalog.Album{Name: "Naima"}.Welcome())
}

func TestAllTracksFlattensInOrder(t *testing.T) {
	albums := catalog.Albums()
	tracks := seq.ToSlice(catalog.AllTracks(albums))
	require.Len(t, tracks, 9)
	assert.Equal(t, "Blue Train", tracks[0].Name)
	assert.Equal(t, "Prelude", tracks[3].Name)
	assert.Equal(t, "Mr. P.C.", tracks[8].Name)
	assert.Equal(t, []string{"Prelude", "Coda"}, albums[1].TrackNames())
}

func TestLongTrackNames(t *testing.T) {
	names := catalog.LongTrackNames(catalog.Albums(), 60, 2)
	assert.Equal(t, map[string]struct{}{"Blue Train": {}, "Moment's Notice": {}}, names)

	assert.Empty(t, catalog.LongTrackNames(catalog.Albums(), 10_000, 2))
	assert.Len(t, catalog.LongTrackNames(catalog.Albums(), 0, 100), 9)
}

func TestLongestTrack(t *testing.T) {
	longest, err := catalog.LongestTrack(catalog.Albums())
	require.NoError(t, err)
	assert.Equal(t, catalog.Track{Name: "Blue Train", Length: 643}, longest)
	assert.Equal(t, "Track{name=Blue Train, length=643}", longest.String())

	_, err = catalog.LongestTrack(nil)
	assert.ErrorIs(t, err, seq.ErrEmpty)

	_, err = catalog.LongestTrack([]catalog.Album{{Name: "Silence"}})
	assert.ErrorIs(t, err, seq.ErrEmpty)
}

func TestLookups(t *testing.T) {
	albums := catalog.Albums()
	index := catalog.IndexByName(albums)
	assert.Len(t, index, 3)
	assert.Len(t, index["Giant Steps"].Tracks, 4)

	found, ok := catalog.FindAlbum(albums, "Interludes").Get()
	require.True(t, ok)
	assert.Len(t, found.Tracks, 2)
	assert.True(t, catalog.FindAlbum(albums, "Kind of Blue").IsNone())
}
