package domain

// Album groups tracks of one artist.
type Album struct {
	ID       string
	Title    string
	Cover    *string
	ArtistID string
}

// Genre is one entry of the discover listing.
type Genre struct {
	ID       string
	Name     GenreName
	CoverURL *string
}

// Track is a hosted piece of audio. Relations are populated only when the
// repository was asked to preload them.
type Track struct {
	ID                 string
	Title              string
	Duration           int
	Lyrics             *string
	HostedDirectoryURL string
	ArtistID           string
	GenreID            string
	AlbumID            string

	Artist *Artist
	Genre  *Genre
	Album  *Album
}

// Lyrics is the result of a lyrics lookup.
type Lyrics struct {
	Text   string
	Title  string
	Artist *string
}

// SearchResult holds the three independently ordered sequences of a combined search.
type SearchResult struct {
	Artists []Artist
	Albums  []Album
	Tracks  []Track
}
