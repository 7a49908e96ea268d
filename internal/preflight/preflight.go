// Package preflight validates upload files locally before any network
// call. Oversized or wrong-type files never reach the backend.
package preflight

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/WebOleg/tether-admin/internal/config"
	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// FileInfo is what preflight learned about an accepted file. Headers and
// RowCount are a preview for the dashboard; the backend does the real parse.
type FileInfo struct {
	Filename string   `json:"filename"`
	Size     int64    `json:"size"`
	Headers  []string `json:"headers,omitempty"`
	RowCount int      `json:"row_count"`
}

var allowedExtensions = map[string]bool{
	".csv":  true,
	".txt":  true,
	".xlsx": true,
	".xls":  true,
}

type Checker struct {
	maxFileSize int64
	logger      *logger.Logger
}

func NewChecker(cfg config.UploadConfig, log *logger.Logger) *Checker {
	return &Checker{
		maxFileSize: cfg.MaxFileSize,
		logger:      log,
	}
}

// Check validates size and type, then reads the file once and extracts a
// header/row-count preview. The returned bytes are the full file content,
// ready for submission.
func (c *Checker) Check(ctx context.Context, filename string, size int64, r io.Reader) (*FileInfo, []byte, error) {
	if size > c.maxFileSize {
		c.logger.Warn(ctx, "Rejecting oversized file",
			"filename", filename,
			"size", size,
			"max_size", c.maxFileSize,
		)
		return nil, nil, fmt.Errorf("%w: %d bytes (max %d)", domain.ErrFileTooLarge, size, c.maxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		c.logger.Warn(ctx, "Rejecting unsupported file type",
			"filename", filename,
			"extension", ext,
		)
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, ext)
	}

	content, err := io.ReadAll(io.LimitReader(r, c.maxFileSize+1))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(content)) > c.maxFileSize {
		return nil, nil, fmt.Errorf("%w: content exceeds %d bytes", domain.ErrFileTooLarge, c.maxFileSize)
	}
	if len(content) == 0 {
		return nil, nil, domain.ErrEmptyFile
	}

	info := &FileInfo{
		Filename: filename,
		Size:     int64(len(content)),
	}

	switch ext {
	case ".csv", ".txt":
		if err := c.previewCSV(content, info); err != nil {
			return nil, nil, err
		}
	case ".xlsx":
		if err := c.previewXLSX(content, info); err != nil {
			return nil, nil, err
		}
	case ".xls":
		// Legacy format: accepted and forwarded unparsed, the backend
		// owns real parsing. No preview.
	}

	c.logger.Debug(ctx, "Preflight accepted file",
		"filename", filename,
		"size", info.Size,
		"row_count", info.RowCount,
	)

	return info, content, nil
}

func (c *Checker) previewCSV(content []byte, info *FileInfo) error {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return domain.ErrEmptyFile
	}
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	for _, col := range header {
		info.Headers = append(info.Headers, strings.TrimSpace(col))
	}

	rowCount := 0
	for {
		_, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed lines are the backend's problem to report per
			// row; preflight only needs an approximate count.
			continue
		}
		rowCount++
	}

	if rowCount == 0 {
		return domain.ErrEmptyFile
	}
	info.RowCount = rowCount

	return nil
}

func (c *Checker) previewXLSX(content []byte, info *FileInfo) error {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("%w: not a readable workbook", domain.ErrUnsupportedFileType)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return domain.ErrEmptyFile
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("failed to read worksheet: %w", err)
	}
	if len(rows) < 2 {
		return domain.ErrEmptyFile
	}

	for _, col := range rows[0] {
		info.Headers = append(info.Headers, strings.TrimSpace(col))
	}
	info.RowCount = len(rows) - 1

	return nil
}
