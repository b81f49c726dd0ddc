package dict

// Reader defines read operations for dictionary storage
type Reader interface {
	// Read returns the dictionary of lang, empty if there is none
	Read(lang string) (Dict, error)

	// Languages returns the languages with a dictionary, sorted
	Languages() ([]string, error)
}

// Writer defines write operations for dictionary storage
type Writer interface {
	// Write replaces the dictionary of lang
	Write(lang string, d Dict) error
}

// Repository combines read and write operations
type Repository interface {
	Reader
	Writer
}
