package download

import (
	"bytes"
	"net/http"
	"strings"
)

// FileType is a detected content type with the extension it is saved under
type FileType struct {
	MIME      string
	Extension string
}

// Compressed reports whether the content must be decompressed before use
func (t FileType) Compressed() bool {
	return t == typeGzip || t == typeZstd
}

var (
	typeRBXM  = FileType{MIME: "application/x-roblox-binary-model", Extension: "rbxm"}
	typeRBXMX = FileType{MIME: "application/x-roblox-xml-model", Extension: "rbxmx"}
	typeGzip  = FileType{MIME: "application/gzip", Extension: "gz"}
	typeZstd  = FileType{MIME: "application/zstd", Extension: "zst"}
	typePNG   = FileType{MIME: "image/png", Extension: "png"}
	typeText  = FileType{MIME: "text/plain", Extension: "txt"}
)

// magic is a byte signature at a fixed offset
type magic struct {
	offset    int
	signature []byte
	fileType  FileType
}

// Signatures are checked in order; more specific ones come first
var signatures = []magic{
	{0, []byte("<roblox!\x89\xff\r\n\x1a\n"), typeRBXM},
	{0, []byte("<roblox xmln"), typeRBXMX},
	{0, []byte{0x1f, 0x8b}, typeGzip},
	{0, []byte{0x28, 0xb5, 0x2f, 0xfd}, typeZstd},
	{0, []byte("\x89PNG\r\n\x1a\n"), typePNG},
	{0, []byte{0xff, 0xd8, 0xff}, FileType{MIME: "image/jpeg", Extension: "jpg"}},
	{0, []byte("GIF87a"), FileType{MIME: "image/gif", Extension: "gif"}},
	{0, []byte("GIF89a"), FileType{MIME: "image/gif", Extension: "gif"}},
	{8, []byte("WEBP"), FileType{MIME: "image/webp", Extension: "webp"}},
	{8, []byte("WAVE"), FileType{MIME: "audio/wav", Extension: "wav"}},
	{0, []byte("OggS"), FileType{MIME: "audio/ogg", Extension: "ogg"}},
	{0, []byte("ID3"), FileType{MIME: "audio/mpeg", Extension: "mp3"}},
	{0, []byte{0xff, 0xfb}, FileType{MIME: "audio/mpeg", Extension: "mp3"}},
	{0, []byte("fLaC"), FileType{MIME: "audio/flac", Extension: "flac"}},
	{4, []byte("ftyp"), FileType{MIME: "video/mp4", Extension: "mp4"}},
	{0, []byte{0x1a, 0x45, 0xdf, 0xa3}, FileType{MIME: "video/webm", Extension: "webm"}},
	{0, []byte("\xabKTX 11\xbb"), FileType{MIME: "image/ktx", Extension: "ktx"}},
	{0, []byte("\xabKTX 20\xbb"), FileType{MIME: "image/ktx2", Extension: "ktx2"}},
	{0, []byte("DDS "), FileType{MIME: "image/vnd-ms.dds", Extension: "dds"}},
	{0, []byte("version "), FileType{MIME: "model/x-roblox-mesh", Extension: "mesh"}},
}

// Sniff detects the type of data from its leading bytes
// Text content that matches no signature is reported as txt; anything else
// returns false
func Sniff(data []byte) (FileType, bool) {
	for _, m := range signatures {
		end := m.offset + len(m.signature)
		if len(data) >= end && bytes.Equal(data[m.offset:end], m.signature) {
			return m.fileType, true
		}
	}

	if len(data) == 0 {
		return FileType{}, false
	}

	if mime := http.DetectContentType(data); strings.HasPrefix(mime, "text/") {
		if strings.HasPrefix(mime, "text/xml") {
			return FileType{MIME: "text/xml", Extension: "xml"}, true
		}
		if strings.HasPrefix(mime, "text/html") {
			return FileType{MIME: "text/html", Extension: "html"}, true
		}
		return typeText, true
	}

	return FileType{}, false
}
