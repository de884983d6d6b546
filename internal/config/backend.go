package config

// Backend names the storage backend shared by the book and credential
// stores.
type Backend string

const (
	// BackendDocument stores books and users in MongoDB collections.
	BackendDocument Backend = "document"

	// BackendRelational stores books and users in SQL tables.
	BackendRelational Backend = "relational"
)

// String implements [fmt.Stringer].
func (b Backend) String() string {
	return string(b)
}
