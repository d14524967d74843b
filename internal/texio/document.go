// Package texio reads and writes LaTeX documents as text. Input may be
// UTF-8 (with or without BOM) or UTF-16, since word processors save both;
// output is always plain UTF-8 so the math symbol replacements survive a
// round trip.
package texio

import (
	"bytes"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"latex-cleanup/internal/logger"
	"latex-cleanup/internal/types"
)

// Encoding names returned by DetectEncoding.
const (
	EncodingUTF8    = "UTF-8"
	EncodingUTF8BOM = "UTF-8-BOM"
	EncodingUTF16LE = "UTF-16LE"
	EncodingUTF16BE = "UTF-16BE"
	EncodingUnknown = "UNKNOWN"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding inspects raw file bytes and reports their encoding.
func DetectEncoding(data []byte) string {
	if len(data) >= 3 && bytes.Equal(data[:3], bomUTF8) {
		return EncodingUTF8BOM
	}
	if len(data) >= 2 && bytes.Equal(data[:2], bomUTF16LE) {
		return EncodingUTF16LE
	}
	if len(data) >= 2 && bytes.Equal(data[:2], bomUTF16BE) {
		return EncodingUTF16BE
	}
	if utf8.Valid(data) {
		return EncodingUTF8
	}
	return EncodingUnknown
}

// ReadDocument reads the file at path and returns its content as UTF-8
// text. A nonexistent path yields an AppError with code ErrFileNotFound;
// undecodable content yields ErrEncoding.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", types.NewAppErrorWithDetails(types.ErrFileNotFound, "input file not found", path, err)
		}
		return "", types.NewAppErrorWithDetails(types.ErrEncoding, "failed to read file", path, err)
	}

	enc := DetectEncoding(data)
	logger.Debug("read document",
		logger.String("path", path),
		logger.String("encoding", enc),
		logger.Int("bytes", len(data)))

	switch enc {
	case EncodingUTF8:
		return string(data), nil
	case EncodingUTF8BOM:
		return string(data[3:]), nil
	case EncodingUTF16LE:
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", types.NewAppErrorWithDetails(types.ErrEncoding, "failed to decode UTF-16LE", path, err)
		}
		return string(decoded), nil
	case EncodingUTF16BE:
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", types.NewAppErrorWithDetails(types.ErrEncoding, "failed to decode UTF-16BE", path, err)
		}
		return string(decoded), nil
	default:
		return "", types.NewAppErrorWithDetails(types.ErrEncoding, "file is not valid UTF-8 or UTF-16", path, nil)
	}
}

// WriteDocument writes text to path as plain UTF-8, overwriting any
// existing file.
func WriteDocument(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return types.NewAppErrorWithDetails(types.ErrWrite, "failed to write file", path, err)
	}
	logger.Debug("wrote document", logger.String("path", path), logger.Int("bytes", len(text)))
	return nil
}
