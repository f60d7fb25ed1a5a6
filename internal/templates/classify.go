package templates

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// binaryMediaTypes are copied verbatim in addition to the audio, font, image
// and video top-level types.
var binaryMediaTypes = map[string]bool{
	"application/octet-stream": true,
	"application/pdf":          true,
}

// Classify guesses from the media type whether path is a template. Files with
// an unknown extension are sniffed and only rendered if they look like text.
func Classify(path string) Classification {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return classifyMediaType(mt)
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return Template
	}
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return Template
		}
	}
	return CopyVerbatim
}

func classifyMediaType(mt string) Classification {
	base, _, err := mime.ParseMediaType(mt)
	if err != nil {
		base = mt
	}

	top, _, _ := strings.Cut(base, "/")
	switch top {
	case "audio", "font", "image", "video":
		return CopyVerbatim
	}
	if binaryMediaTypes[base] {
		return CopyVerbatim
	}
	return Template
}
