package mimetype

import "bytes"

// Sniff detects the content type from magic bytes at fixed offsets in the
// sample. Signatures are ordered most specific first.
type Sniff struct{}

// Detect implements Strategy.
func (Sniff) Detect(_ string, sample []byte) (Type, bool) {
	if len(sample) == 0 {
		return Type{}, false
	}

	if value, ok := sniffRIFF(sample); ok {
		return Type{Value: value, Source: SourceSniff}, true
	}

	for _, sig := range signatures {
		end := sig.offset + len(sig.magic)
		if len(sample) >= end && bytes.Equal(sample[sig.offset:end], sig.magic) {
			return Type{Value: sig.value, Source: SourceSniff}, true
		}
	}

	return Type{}, false
}

// sniffRIFF disambiguates RIFF containers by their form tag at offset 8.
func sniffRIFF(sample []byte) (string, bool) {
	if len(sample) < 12 || !bytes.Equal(sample[:4], []byte("RIFF")) {
		return "", false
	}
	switch string(sample[8:12]) {
	case "WAVE":
		return "audio/wav", true
	case "AVI ":
		return "video/x-msvideo", true
	case "WEBP":
		return "image/webp", true
	}
	return "", false
}

// signature binds a media type to magic bytes at a fixed offset.
type signature struct {
	value  string
	offset int
	magic  []byte
}

var signatures = []signature{
	// Images
	{value: "image/png", magic: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{value: "image/jpeg", magic: []byte{0xFF, 0xD8, 0xFF}},
	{value: "image/gif", magic: []byte("GIF87a")},
	{value: "image/gif", magic: []byte("GIF89a")},
	{value: "image/tiff", magic: []byte{0x49, 0x49, 0x2A, 0x00}},
	{value: "image/tiff", magic: []byte{0x4D, 0x4D, 0x00, 0x2A}},
	{value: "image/bmp", magic: []byte("BM")},
	{value: "image/x-icon", magic: []byte{0x00, 0x00, 0x01, 0x00}},
	{value: "image/avif", offset: 4, magic: []byte("ftypavif")},
	{value: "image/heic", offset: 4, magic: []byte("ftypheic")},

	// Documents
	{value: "application/pdf", magic: []byte("%PDF-")},
	{value: "application/xml", magic: []byte("<?xml")},

	// Archives
	{value: "application/zip", magic: []byte{0x50, 0x4B, 0x03, 0x04}},
	{value: "application/zip", magic: []byte{0x50, 0x4B, 0x05, 0x06}},
	{value: "application/zip", magic: []byte{0x50, 0x4B, 0x07, 0x08}},
	{value: "application/gzip", magic: []byte{0x1F, 0x8B}},
	{value: "application/x-tar", offset: 257, magic: []byte("ustar")},
	{value: "application/x-rar-compressed", magic: []byte("Rar!\x1a\x07")},
	{value: "application/x-7z-compressed", magic: []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}},
	{value: "application/x-bzip2", magic: []byte("BZh")},
	{value: "application/x-xz", magic: []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},

	// Audio
	{value: "audio/mpeg", magic: []byte("ID3")},
	{value: "audio/mpeg", magic: []byte{0xFF, 0xFB}},
	{value: "audio/mpeg", magic: []byte{0xFF, 0xF3}},
	{value: "audio/mpeg", magic: []byte{0xFF, 0xF2}},
	{value: "audio/flac", magic: []byte("fLaC")},
	{value: "audio/ogg", magic: []byte("OggS")},

	// Video
	{value: "video/mp4", offset: 4, magic: []byte("ftyp")},
	{value: "video/webm", magic: []byte{0x1A, 0x45, 0xDF, 0xA3}},
	{value: "video/x-flv", magic: []byte("FLV")},

	// Fonts
	{value: "font/woff", magic: []byte("wOFF")},
	{value: "font/woff2", magic: []byte("wOF2")},

	// Misc
	{value: "application/wasm", magic: []byte{0x00, 'a', 's', 'm'}},
}
