package source

import (
	"os"
)

// Flags records the normalizations applied while reading a file.
type Flags uint8

const (
	// FileHadBOM indicates a UTF-8 byte order mark was stripped.
	FileHadBOM Flags = 1 << iota
	// FileNormalizedCRLF indicates \r\n sequences were replaced by \n.
	FileNormalizedCRLF
)

// ReadFile reads a file from disk, strips a BOM and normalizes CRLF.
func ReadFile(path string) ([]byte, Flags, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	content, flags := Normalize(content)
	return content, flags, nil
}

// Normalize applies the same BOM / CRLF cleanup as ReadFile to in-memory content.
func Normalize(content []byte) ([]byte, Flags) {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := Flags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return content, flags
}
