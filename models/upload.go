package models

import "io"

// ImageUpload is an incoming featured-image file. The original filename is
// kept only for its extension; stored files get generated names.
type ImageUpload struct {
	OriginalName string
	Content      io.Reader
}
