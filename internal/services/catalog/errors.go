package catalog

// CatalogError is a custom error type for catalog errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

const (
	ErrKitAlreadyExists CatalogError = "a kit with that name already exists"
	ErrKitNotFound      CatalogError = "kit not found"
	ErrKitNameTaken     CatalogError = "the new kit name is already taken"
	ErrInvalidKitName   CatalogError = "kit name is invalid"
	ErrNilConfig        CatalogError = "config cannot be nil"
	ErrNilRepository    CatalogError = "kit repository cannot be nil"
)
