package services

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataquad/recruitops/internal/models"
)

// makeFileHeader builds a real multipart.FileHeader from in-memory content.
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("jobDescriptionFile", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["jobDescriptionFile"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestExtractor(t *testing.T) TextExtractor {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())
	return NewTextExtractor(storage)
}

func TestExtractUploadTxt(t *testing.T) {
	extractor := newTestExtractor(t)

	out, err := extractor.ExtractUpload(makeFileHeader(t, "jd.txt", []byte("Go developer, 5 years")))
	require.NoError(t, err)
	assert.False(t, out.IsImage)
	assert.Equal(t, "Go developer, 5 years", out.Text)
	assert.Nil(t, out.ImageData)
}

func TestExtractUploadImagePassesThrough(t *testing.T) {
	extractor := newTestExtractor(t)
	payload := []byte{0x89, 0x50, 0x4e, 0x47}

	out, err := extractor.ExtractUpload(makeFileHeader(t, "jd.PNG", payload))
	require.NoError(t, err)
	assert.True(t, out.IsImage)
	assert.Equal(t, payload, out.ImageData)
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), out.Text)
}

func TestExtractUploadUnsupportedExtension(t *testing.T) {
	extractor := newTestExtractor(t)

	_, err := extractor.ExtractUpload(makeFileHeader(t, "jd.xlsx", []byte("data")))
	require.Error(t, err)
	assert.Equal(t, models.ErrKindUnsupportedFileType, models.KindOf(err))
}

func TestExtractUploadEmptyFile(t *testing.T) {
	extractor := newTestExtractor(t)

	_, err := extractor.ExtractUpload(makeFileHeader(t, "jd.pdf", nil))
	require.Error(t, err)
	assert.Equal(t, models.ErrKindEmptyFile, models.KindOf(err))
}
