package mediapaths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"relative upload path untouched", "/uploads/pic.png", "/uploads/pic.png"},
		{"absolute origin stripped", "http://localhost:5001/uploads/pic.png", "/uploads/pic.png"},
		{"https origin stripped", "https://gigs.example.com/uploads/pic.png", "/uploads/pic.png"},
		{"duplicated prefix collapsed", "/uploads/uploads/pic.png", "/uploads/pic.png"},
		{"origin plus duplicated prefix", "http://localhost:5000/uploads/uploads/pic.png", "/uploads/pic.png"},
		{"triple prefix fully collapsed", "/uploads/uploads/uploads/pic.png", "/uploads/pic.png"},
		{"external url kept as is", "https://placehold.co/150x150/553c9a/ffffff?text=Host", "https://placehold.co/150x150/553c9a/ffffff?text=Host"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	t.Parallel()

	in := []string{
		"http://localhost:5001/uploads/a.png",
		"",
		"/uploads/uploads/b.png",
		"/uploads/c.png",
	}

	got := NormalizeAll(in)

	assert.Equal(t, []string{"/uploads/a.png", "/uploads/b.png", "/uploads/c.png"}, got)
}

func TestNormalizeAllEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NormalizeAll(nil))
	assert.Empty(t, NormalizeAll([]string{""}))
}
