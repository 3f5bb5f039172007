package domain

const (
	PrincipalCtxKey = "td-principal"
)

// Gender of an account holder.
type Gender string

const (
	GenderMale      Gender = "MALE"
	GenderFemale    Gender = "FEMALE"
	GenderUndefined Gender = "UNDEFINED"
)

// AccountType distinguishes publishing artists from listeners.
type AccountType string

const (
	AccountArtist   AccountType = "ARTIST"
	AccountListener AccountType = "LISTENER"
)

// GenreName is the fixed genre enumeration.
type GenreName string

const (
	GenreUndefined GenreName = "UNDEFINED"
	GenreHipHop    GenreName = "HIPHOP"
	GenrePop       GenreName = "POP"
	GenreClassical GenreName = "CLASSICAL"
)

// Result caps for the combined search endpoint.
const (
	SearchArtistLimit = 20
	SearchAlbumLimit  = 20
	SearchTrackLimit  = 40
)
