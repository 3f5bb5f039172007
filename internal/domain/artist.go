package domain

// Artist is an account. Every registered user is an artist record, listeners included.
type Artist struct {
	ID              string
	Email           string
	PasswordHash    string
	Name            string
	Gender          Gender
	Type            AccountType
	Bio             *string
	ProfileImageURL *string

	Albums []Album
	Tracks []Track
}
