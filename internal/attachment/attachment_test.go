package attachment_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/attachment"
	"github.com/rezonia/facturx/internal/cii"
)

// pngHeader is enough for content-based MIME detection.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestFromBytesPNG(t *testing.T) {
	obj, err := attachment.FromBytes(pngHeader, "diagram.png")
	require.NoError(t, err)

	assert.Equal(t, "image/png", obj.MimeCode)
	assert.Equal(t, "diagram.png", obj.Filename)

	decoded, err := base64.StdEncoding.DecodeString(obj.ContentB64)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, decoded)
}

func TestFromBytesCSVByExtension(t *testing.T) {
	obj, err := attachment.FromBytes([]byte("sku,qty\nA,1\n"), "items.csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", obj.MimeCode)
}

func TestFromBytesRejectsUnsupportedType(t *testing.T) {
	// Plain text without a .csv extension is not an allowed attachment.
	_, err := attachment.FromBytes([]byte("hello world\n"), "notes.txt")
	require.Error(t, err)

	var ute *attachment.UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "notes.txt", ute.Filename)
}

func TestFromBytesRejectsCorruptPDF(t *testing.T) {
	corrupt := []byte("%PDF-1.4\nthis is not a real pdf body")

	_, err := attachment.FromBytes(corrupt, "report.pdf")
	require.Error(t, err)

	var ipe *attachment.InvalidPDFError
	assert.ErrorAs(t, err, &ipe)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := attachment.Load(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(src, pngHeader, 0o644))

	obj, err := attachment.Load(src)
	require.NoError(t, err)
	assert.Equal(t, "logo.png", obj.Filename)

	out := t.TempDir()
	path, err := attachment.Save(obj, out)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}

func TestSaveFlattensFilename(t *testing.T) {
	obj := &cii.BinaryObject{
		ContentB64: base64.StdEncoding.EncodeToString([]byte("a,b\n")),
		MimeCode:   "text/csv",
		Filename:   "../escape.csv",
	}

	dir := t.TempDir()
	path, err := attachment.Save(obj, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.csv"), path)
}
