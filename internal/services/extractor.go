package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"dataquad/recruitops/internal/models"
)

// ExtractedDescription is the result of processing an uploaded
// job-description file. Documents yield text; images pass through as raw
// bytes plus their base64 form.
type ExtractedDescription struct {
	Text      string
	IsImage   bool
	ImageData []byte
}

// TextExtractor turns an uploaded job-description file into text (pdf, docx,
// txt) or a base64 image passthrough (jpg, jpeg, png, gif).
type TextExtractor interface {
	ExtractUpload(file *multipart.FileHeader) (*ExtractedDescription, error)
}

type textExtractor struct {
	storage StorageService
}

func NewTextExtractor(storage StorageService) TextExtractor {
	return &textExtractor{storage: storage}
}

func (e *textExtractor) ExtractUpload(file *multipart.FileHeader) (*ExtractedDescription, error) {
	if file.Size == 0 {
		return nil, models.ErrEmptyFile()
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	switch ext {
	case "pdf":
		return e.extractByPath(file, extractPDFText)
	case "docx":
		return e.extractByPath(file, extractDocxText)
	case "txt":
		data, err := readUpload(file)
		if err != nil {
			return nil, err
		}
		return &ExtractedDescription{Text: string(data)}, nil
	case "jpg", "jpeg", "png", "gif":
		data, err := readUpload(file)
		if err != nil {
			return nil, err
		}
		return &ExtractedDescription{
			IsImage:   true,
			ImageData: data,
			Text:      base64.StdEncoding.EncodeToString(data),
		}, nil
	default:
		return nil, models.ErrUnsupportedFileType(ext)
	}
}

// extractByPath stages the upload on disk for the path-based extractors and
// removes the scratch file afterwards.
func (e *textExtractor) extractByPath(file *multipart.FileHeader, extract func(path string) (string, error)) (*ExtractedDescription, error) {
	filename, path, err := e.storage.SaveFile(file)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := e.storage.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to remove scratch file %s: %v", filename, err)
		}
	}()

	text, err := extract(path)
	if err != nil {
		return nil, err
	}
	return &ExtractedDescription{Text: text}, nil
}

func extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return text, nil
}

func extractDocxText(path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert DOCX: %w", err)
	}
	return res.Body, nil
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}
