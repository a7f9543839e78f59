package utils

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"
)

func TestValidateMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/gif", false},
		{"image/webp", false},
		{"application/pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateMimeType(tt.mimeType); got.Valid != tt.want {
			t.Errorf("ValidateMimeType(%q).Valid = %v, want %v", tt.mimeType, got.Valid, tt.want)
		}
	}
}

func TestValidateFileSize(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want bool
	}{
		{"empty", 0, false},
		{"negative", -1, false},
		{"one byte", 1, true},
		{"exactly at limit", 10 * 1024 * 1024, true},
		{"one byte over", 10*1024*1024 + 1, false},
		{"fifteen megabytes", 15 * 1024 * 1024, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateFileSize(tt.size); got.Valid != tt.want {
				t.Errorf("ValidateFileSize(%d).Valid = %v, want %v", tt.size, got.Valid, tt.want)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		width, height int
		want          bool
	}{
		{800, 600, true},
		{4000, 3000, true},
		{799, 600, false},
		{800, 599, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := ValidateDimensions(tt.width, tt.height); got.Valid != tt.want {
			t.Errorf("ValidateDimensions(%d, %d).Valid = %v, want %v", tt.width, tt.height, got.Valid, tt.want)
		}
	}
}

func TestValidatePhotoMetadata(t *testing.T) {
	goodDescription := strings.Repeat("x", 40)
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name        string
		title       string
		description string
		location    string
		dateTaken   *time.Time
		wantFields  []string
	}{
		{"all valid", "A good title", goodDescription, "Oslo", &past, nil},
		{"nil date is valid", "A good title", goodDescription, "Oslo", nil, nil},
		{"title too short", "ab", goodDescription, "Oslo", nil, []string{"title"}},
		{"title too long", strings.Repeat("t", 101), goodDescription, "Oslo", nil, []string{"title"}},
		{"description too short", "A good title", "short", "Oslo", nil, []string{"description"}},
		{"description too long", "A good title", strings.Repeat("d", 501), "Oslo", nil, []string{"description"}},
		{"location too short", "A good title", goodDescription, "X", nil, []string{"location"}},
		{"future date", "A good title", goodDescription, "Oslo", &future, []string{"date_taken"}},
		{"multiple failures", "ab", "short", "X", &future, []string{"title", "description", "location", "date_taken"}},
		{"multibyte description counts runes not bytes", "A good title", strings.Repeat("å", 300), "Oslo", nil, nil},
		{"multibyte title at limit", strings.Repeat("日", 100), goodDescription, "Oslo", nil, nil},
		{"multibyte title over limit", strings.Repeat("日", 101), goodDescription, "Oslo", nil, []string{"title"}},
		{"multibyte description under minimum", "A good title", strings.Repeat("日", 19), "Oslo", nil, []string{"description"}},
		{"multibyte location at minimum", "A good title", goodDescription, "Ås", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ValidatePhotoMetadata(tt.title, tt.description, tt.location, tt.dateTaken)
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("got %d errors %v, want %d", len(fields), fields, len(tt.wantFields))
			}
			for _, field := range tt.wantFields {
				if _, ok := fields[field]; !ok {
					t.Errorf("missing error for %q, got %v", field, fields)
				}
			}
		})
	}
}

func TestProbeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1024, 768))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	width, height, err := ProbeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("ProbeImage: %v", err)
	}
	if width != 1024 || height != 768 {
		t.Errorf("probed %dx%d, want 1024x768", width, height)
	}

	if _, _, err := ProbeImage([]byte("not an image")); err == nil {
		t.Error("expected an error for non-image data")
	}
}
