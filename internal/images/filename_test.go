package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFilename(t *testing.T) {
	tests := []struct {
		name        string
		propertyID  int64
		ordering    int
		fileName    string
		url         string
		contentType string
		want        string
	}{
		{
			name:       "extension from name",
			propertyID: 42,
			ordering:   0,
			fileName:   "Front Garden.JPG",
			url:        "https://cdn.example.com/x",
			want:       "42_000_Front_Garden.jpg",
		},
		{
			name:       "extension from url when name has none",
			propertyID: 42,
			ordering:   3,
			fileName:   "kitchen",
			url:        "https://cdn.example.com/photos/kitchen.png?sig=abc",
			want:       "42_003_kitchen.png",
		},
		{
			name:        "extension from content type",
			propertyID:  42,
			ordering:    1,
			fileName:    "",
			url:         "https://cdn.example.com/media/9f8e7d",
			contentType: "image/gif; charset=binary",
			want:        "42_001_image.gif",
		},
		{
			name:       "jpg when nothing resolves",
			propertyID: 7,
			ordering:   12,
			fileName:   "photo",
			url:        "https://cdn.example.com/media/9f8e7d",
			want:       "7_012_photo.jpg",
		},
		{
			name:       "jpe normalised to jpg",
			propertyID: 7,
			ordering:   0,
			fileName:   "lounge.jpe",
			url:        "",
			want:       "7_000_lounge.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFilename(tt.propertyID, tt.ordering, tt.fileName, tt.url, tt.contentType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveFilename_Deterministic(t *testing.T) {
	a := DeriveFilename(99, 5, "Rear Aspect.jpeg", "https://x/y.jpeg", "")
	b := DeriveFilename(99, 5, "Rear Aspect.jpeg", "https://x/y.jpeg", "")
	assert.Equal(t, a, b)
}

func TestDeriveFilename_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 500) + ".jpg"
	got := DeriveFilename(42, 0, long, "", "")
	assert.LessOrEqual(t, len(got), 240)
	assert.True(t, strings.HasSuffix(got, ".jpg"))
	assert.True(t, strings.HasPrefix(got, "42_000_"))
}
