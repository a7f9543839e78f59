package utils

import (
	"fmt"
	"strings"
)

// extensions by accepted content type
var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// PhotoObjectKey builds the blob store key for a photo's original file
func PhotoObjectKey(competitionID, photoID, mimeType string) string {
	return fmt.Sprintf("competitions/%s/photos/%s.%s", competitionID, photoID, ExtensionForMime(mimeType))
}

// ExtensionForMime returns the canonical file extension for a content type
func ExtensionForMime(mimeType string) string {
	if ext, ok := extensions[mimeType]; ok {
		return ext
	}
	return "bin"
}

// MimeForExtension returns the content type matching a file extension
func MimeForExtension(name string) string {
	for mime, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(name), "."+ext) {
			return mime
		}
	}
	if strings.HasSuffix(strings.ToLower(name), ".jpeg") {
		return "image/jpeg"
	}
	return "application/octet-stream"
}
