// Package mediapaths canonicalizes stored media references. Clients send
// profile pictures and gallery entries back as full origin-qualified URLs;
// only the origin-independent /uploads/... path is persisted, so the same row
// stays valid when the backend moves hosts or ports. Earlier releases also
// wrote a duplicated /uploads/uploads/ segment on some rows, which is
// collapsed here on every write.
package mediapaths

import (
	"net/url"
	"strings"
)

const uploadsPrefix = "/uploads/"

// Normalize converts a media reference to its canonical relative form.
// Accepted inputs: full URLs ("http://host:port/uploads/x.jpg"), already
// relative paths ("/uploads/x.jpg"), and broken duplicated forms
// ("/uploads/uploads/x.jpg"). Anything that does not point under /uploads/
// is returned unchanged.
func Normalize(ref string) string {
	if ref == "" {
		return ref
	}

	path := ref
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Host != "" {
		path = u.Path
	}

	if !strings.HasPrefix(path, uploadsPrefix) {
		return ref
	}

	// Collapse any run of duplicated /uploads/uploads/ artifacts.
	for strings.HasPrefix(path, uploadsPrefix+"uploads/") {
		path = uploadsPrefix + strings.TrimPrefix(path, uploadsPrefix+"uploads/")
	}

	return path
}

// NormalizeAll canonicalizes a list in place-order, dropping empty entries.
func NormalizeAll(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		out = append(out, Normalize(ref))
	}
	return out
}
