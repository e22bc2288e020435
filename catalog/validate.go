package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmingruby/lambdalab/validated"
)

var (
	ErrBlankName      = errors.New("catalog: blank name")
	ErrNegativeLength = errors.New("catalog: negative length")
)

// ValidateTrack reports every problem with t.
func ValidateTrack(t Track) validated.Validated[error, Track] {
	var errs []error
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, fmt.Errorf("track %q: %w", t.Name, ErrBlankName))
	}
	if t.Length < 0 {
		errs = append(errs, fmt.Errorf("track %q: %w (%d)", t.Name, ErrNegativeLength, t.Length))
	}
	if len(errs) > 0 {
		return validated.Invalid[error, Track](errs...)
	}
	return validated.Valid[error](t)
}

// ValidateAlbum checks the album name and every track, collecting all
// problems rather than stopping at the first.
func ValidateAlbum(a Album) validated.Validated[error, Album] {
	name := validated.Valid[error](a.Name)
	if strings.TrimSpace(a.Name) == "" {
		name = validated.Invalid[error, string](fmt.Errorf("album: %w", ErrBlankName))
	}
	tracks := validated.Traverse(a.Tracks, ValidateTrack)
	return validated.Map(validated.Zip2(name, tracks), func(p validated.Pair[string, []Track]) Album {
		return Album{Name: p.First, Tracks: p.Second}
	})
}
