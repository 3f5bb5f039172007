// Package query turns optional search parameters into normalized filter specs.
// It knows logical field names only; repositories map them to columns.
package query

import (
	"net/url"
	"strings"

	"github.com/tunedeck/tunedeck/internal/domain"
)

// Logical fields understood by the repositories.
const (
	FieldArtistName  = "artist.name"
	FieldAlbumTitle  = "album.title"
	FieldAlbumArtist = "album.artist_id"
	FieldTrackTitle  = "track.title"
	FieldTrackAlbum  = "track.album_id"
	FieldTrackGenre  = "track.genre_id"
	FieldGenreName   = "genre.name"
	FieldPlaylist    = "playlist.title"
	FieldCreator     = "playlist.creator_id"
)

// Kind names the listing a spec is built for.
type Kind int

const (
	KindArtists Kind = iota
	KindAlbums
	KindAlbumTracks
	KindGenreTracks
	KindGenres
	KindPlaylists
	KindLyrics
)

// SearchFilter is a case-insensitive substring predicate.
type SearchFilter struct {
	Field           string
	Pattern         string
	CaseInsensitive bool
}

// Equal is an exact match predicate, used for path identifiers.
type Equal struct {
	Field string
	Value string
}

// Order is one ordering term. Ordering compares by codepoint.
type Order struct {
	Field string
	Desc  bool
}

// FilterSpec is the normalized set of predicates, ordering and cap for one query.
type FilterSpec struct {
	Search []SearchFilter
	Equals []Equal
	Order  []Order
	Limit  int
}

// Build derives the spec for kind from the request's query parameters.
// An absent or blank parameter adds no predicate.
func Build(kind Kind, params url.Values) FilterSpec {
	switch kind {
	case KindArtists:
		return FilterSpec{
			Search: contains(FieldArtistName, params.Get("artist")),
			Order:  ascending(FieldArtistName),
		}
	case KindAlbums:
		return FilterSpec{
			Search: contains(FieldAlbumTitle, params.Get("album")),
			Order:  ascending(FieldAlbumTitle),
		}
	case KindAlbumTracks, KindGenreTracks:
		return FilterSpec{
			Search: contains(FieldTrackTitle, params.Get("track")),
			Order:  ascending(FieldTrackTitle),
		}
	case KindGenres:
		return FilterSpec{Order: ascending(FieldGenreName)}
	case KindPlaylists:
		return FilterSpec{Order: ascending(FieldPlaylist)}
	case KindLyrics:
		spec := FilterSpec{
			Search: contains(FieldTrackTitle, params.Get("title")),
			Order:  ascending(FieldTrackTitle),
			Limit:  1,
		}
		spec.Search = append(spec.Search, contains(FieldArtistName, params.Get("artist"))...)
		return spec
	}
	return FilterSpec{}
}

// Where adds an exact match predicate.
func (s FilterSpec) Where(field, value string) FilterSpec {
	s.Equals = append(append([]Equal(nil), s.Equals...), Equal{Field: field, Value: value})
	return s
}

// Search is the fan-out plan of the combined search endpoint.
type Search struct {
	Artists FilterSpec
	Albums  FilterSpec
	Tracks  FilterSpec
}

// BuildSearch derives the three independent specs for q. ok is false when q
// is blank, in which case no query should be issued.
func BuildSearch(params url.Values) (Search, bool) {
	q := strings.TrimSpace(params.Get("q"))
	if q == "" {
		return Search{}, false
	}
	return Search{
		Artists: FilterSpec{
			Search: contains(FieldArtistName, q),
			Order:  ascending(FieldArtistName),
			Limit:  domain.SearchArtistLimit,
		},
		Albums: FilterSpec{
			Search: contains(FieldAlbumTitle, q),
			Order:  ascending(FieldAlbumTitle),
			Limit:  domain.SearchAlbumLimit,
		},
		Tracks: FilterSpec{
			Search: contains(FieldTrackTitle, q),
			Order:  ascending(FieldTrackTitle),
			Limit:  domain.SearchTrackLimit,
		},
	}, true
}

func contains(field, pattern string) []SearchFilter {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	return []SearchFilter{{Field: field, Pattern: pattern, CaseInsensitive: true}}
}

func ascending(field string) []Order {
	return []Order{{Field: field}}
}

// LikePattern renders the filter as a LIKE operand matching the pattern anywhere,
// with LIKE metacharacters escaped by a backslash.
func (f SearchFilter) LikePattern() string {
	p := f.Pattern
	if f.CaseInsensitive {
		p = strings.ToLower(p)
	}
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(p) + "%"
}
