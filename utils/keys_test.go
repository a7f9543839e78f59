package utils

import "testing"

func TestPhotoObjectKey(t *testing.T) {
	got := PhotoObjectKey("comp-1", "photo-1", "image/jpeg")
	want := "competitions/comp-1/photos/photo-1.jpg"
	if got != want {
		t.Errorf("PhotoObjectKey = %q, want %q", got, want)
	}
}

func TestExtensionForMime(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/jpeg", "jpg"},
		{"image/png", "png"},
		{"application/pdf", "bin"},
	}

	for _, tt := range tests {
		if got := ExtensionForMime(tt.mimeType); got != tt.want {
			t.Errorf("ExtensionForMime(%q) = %q, want %q", tt.mimeType, got, tt.want)
		}
	}
}

func TestMimeForExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.JPG", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"photo.png", "image/png"},
		{"photo.gif", "application/octet-stream"},
		{"photo", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := MimeForExtension(tt.name); got != tt.want {
			t.Errorf("MimeForExtension(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
