package filestorage

import (
	"mime/multipart"
)

// Storage is the binary object store for uploaded images: store bytes,
// return a retrievable path.
type Storage interface {
	// SaveFile stores an uploaded file under the given subdirectory/prefix and
	// returns the path or URL it can be retrieved from. A nil fileHeader is
	// not an error; it returns an empty path.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Deleting an absent file is
	// not an error.
	DeleteFile(path string) error
}
