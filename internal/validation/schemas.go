package validation

// Kind names one of the accepted payload schemas.
type Kind string

const (
	KindRegister       Kind = "register"
	KindLogin          Kind = "login"
	KindPlaylist       Kind = "playlist"
	KindPlaylistUpdate Kind = "playlist_update"
	KindTrack          Kind = "track"
	KindAlbum          Kind = "album"
	KindGenre          Kind = "genre"
)

type RegisterInput struct {
	Email           string  `json:"email" yaml:"email" validate:"email"`
	Password        string  `json:"password" yaml:"password" validate:"min=8"`
	Name            string  `json:"name" yaml:"name" validate:"letters"`
	Gender          *string `json:"gender,omitempty" yaml:"gender" validate:"omitnil,oneof=MALE FEMALE UNDEFINED"`
	Type            *string `json:"type,omitempty" yaml:"type" validate:"omitnil,oneof=ARTIST LISTENER"`
	Bio             *string `json:"bio,omitempty" yaml:"bio"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty" yaml:"profileImageUrl" validate:"omitnil,url"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=8"`
}

type PlaylistInput struct {
	Title    string   `json:"playlistTitle" validate:"min=1"`
	TrackIDs []string `json:"trackIds" validate:"min=1,dive,cuid"`
}

// PlaylistUpdateInput is partial: nil fields keep their stored value, a
// non-nil TrackIDs replaces the whole membership.
type PlaylistUpdateInput struct {
	Title    *string   `json:"playlistTitle,omitempty" validate:"omitnil,min=1"`
	TrackIDs *[]string `json:"trackIds,omitempty" validate:"omitnil,dive,cuid"`
}

type TrackInput struct {
	Title              string  `json:"title" yaml:"title" validate:"min=1"`
	ArtistID           string  `json:"r_aid" yaml:"r_aid" validate:"cuid"`
	Duration           int     `json:"duration" yaml:"duration" validate:"gt=0"`
	GenreID            string  `json:"genreid" yaml:"genreid" validate:"cuid"`
	AlbumID            string  `json:"albumid" yaml:"albumid" validate:"cuid"`
	Lyrics             *string `json:"lyrics,omitempty" yaml:"lyrics"`
	HostedDirectoryURL string  `json:"hostedDirectoryUrl" yaml:"hostedDirectoryUrl" validate:"url"`
}

type AlbumInput struct {
	Title    string  `json:"title" yaml:"title" validate:"min=1"`
	Cover    *string `json:"albumCover,omitempty" yaml:"albumCover" validate:"omitnil,url"`
	ArtistID string  `json:"artistid" yaml:"artistid" validate:"cuid"`
}

type GenreInput struct {
	Genre    *string `json:"genre,omitempty" yaml:"genre" validate:"omitnil,oneof=UNDEFINED HIPHOP POP CLASSICAL"`
	CoverURL *string `json:"genreCoverUrl,omitempty" yaml:"genreCoverUrl" validate:"omitnil,url"`
}

// messages maps "<field>.<tag>" and then "<tag>" to the text shown to clients.
var messages = map[string]string{
	"email":             "Invalid email",
	"password.min":      "Password must be at least 8 characters",
	"letters":           "Only A-Z, a-z characters allowed",
	"gender.oneof":      "Invalid enum value. Expected 'MALE' | 'FEMALE' | 'UNDEFINED'",
	"type.oneof":        "Invalid enum value. Expected 'ARTIST' | 'LISTENER'",
	"genre.oneof":       "Invalid enum value. Expected 'UNDEFINED' | 'HIPHOP' | 'POP' | 'CLASSICAL'",
	"url":               "Invalid URL",
	"playlistTitle.min": "Playlist title cannot be empty",
	"trackIds.min":      "Playlist must have at least one track",
	"title.min":         "Title cannot be empty",
	"duration.gt":       "Duration must be positive",
	"cuid":              "Invalid cuid",
	"required":          "Required",
}
