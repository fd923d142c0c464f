// Package attachment loads files from disk into embeddable invoice
// attachments: base64 content plus a detected MIME type, restricted to the
// formats hybrid invoice containers accept for supporting documents.
package attachment

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/facturx/internal/cii"
)

// allowedMIME lists the MIME types permitted for embedded supporting
// documents.
var allowedMIME = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"text/csv":        true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.oasis.opendocument.spreadsheet":                    true,
}

// UnsupportedTypeError reports a file whose detected MIME type is not
// allowed as an embedded attachment.
type UnsupportedTypeError struct {
	Filename string
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("attachment %s: unsupported MIME type %s", e.Filename, e.MimeType)
}

// InvalidPDFError reports a PDF attachment that failed structural
// validation.
type InvalidPDFError struct {
	Filename string
	Cause    error
}

func (e *InvalidPDFError) Error() string {
	return fmt.Sprintf("attachment %s: invalid PDF: %v", e.Filename, e.Cause)
}

func (e *InvalidPDFError) Unwrap() error {
	return e.Cause
}

// Load reads path, infers its MIME type from content, and returns a binary
// object ready to embed. PDF files are additionally checked for structural
// validity so a corrupt attachment is caught before it ends up inside a
// signed invoice.
func Load(path string) (*cii.BinaryObject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	return FromBytes(data, filepath.Base(path))
}

// FromBytes builds a binary object from in-memory content.
func FromBytes(data []byte, filename string) (*cii.BinaryObject, error) {
	mime := mimetype.Detect(data)
	mimeCode := normalize(mime, filename)

	if !allowedMIME[mimeCode] {
		return nil, &UnsupportedTypeError{Filename: filename, MimeType: mimeCode}
	}

	if mimeCode == "application/pdf" {
		if err := api.Validate(bytes.NewReader(data), nil); err != nil {
			return nil, &InvalidPDFError{Filename: filename, Cause: err}
		}
	}

	return &cii.BinaryObject{
		ContentB64: base64.StdEncoding.EncodeToString(data),
		MimeCode:   mimeCode,
		Filename:   filename,
	}, nil
}

// normalize strips MIME parameters and fixes up detections that depend on
// the extension. CSV is plain text to a content sniffer, so the extension
// decides there.
func normalize(mime *mimetype.MIME, filename string) string {
	detected := mime.String()
	if i := bytes.IndexByte([]byte(detected), ';'); i >= 0 {
		detected = detected[:i]
	}
	if detected == "text/plain" && filepath.Ext(filename) == ".csv" {
		return "text/csv"
	}
	return detected
}

// Save decodes a binary object back to disk under dir, using its stored
// filename. The filename is flattened to its base to keep writes inside
// dir.
func Save(obj *cii.BinaryObject, dir string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(obj.ContentB64)
	if err != nil {
		return "", fmt.Errorf("decode attachment %s: %w", obj.Filename, err)
	}
	path := filepath.Join(dir, filepath.Base(obj.Filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}
	return path, nil
}
