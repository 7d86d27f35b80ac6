package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/Heman1223/bhuvik-enterprises/pkg/logger"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// MaxResumeSize caps uploads at 5 MiB.
const MaxResumeSize = 5 << 20

var (
	ErrInvalidFile = errors.New("invalid resume file")
	ErrNotFound    = errors.New("resume file not found")
)

var pdfMagic = []byte("%PDF-")

// StoredResume references a file the custodian accepted. Name is opaque and
// collision-resistant; OriginalName is display metadata only.
type StoredResume struct {
	Name         string
	OriginalName string
}

// Custodian owns the resume upload directory. Files are written before the
// payment callback is verified, so every failing commit path must call
// Discard for the file it accepted.
type Custodian struct {
	dir string
}

func NewCustodian(dir string) (*Custodian, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Custodian{dir: dir}, nil
}

// Accept validates the uploaded file and writes it to the upload directory
// under a generated name. Only PDFs up to MaxResumeSize pass: the declared
// content type, the extension and the file's own magic bytes all have to
// agree, so validation never depends on client headers alone.
func (c *Custodian) Accept(fh *multipart.FileHeader) (*StoredResume, error) {
	if fh == nil {
		return nil, fmt.Errorf("%w: missing file", ErrInvalidFile)
	}

	if fh.Size <= 0 || fh.Size > MaxResumeSize {
		return nil, fmt.Errorf("%w: size %d exceeds %d bytes", ErrInvalidFile, fh.Size, int64(MaxResumeSize))
	}

	if declared := fh.Header.Get("Content-Type"); declared != "" &&
		declared != "application/pdf" && declared != "application/octet-stream" {
		return nil, fmt.Errorf("%w: unexpected content type %s", ErrInvalidFile, declared)
	}

	if ext := strings.ToLower(filepath.Ext(fh.Filename)); ext != ".pdf" {
		return nil, fmt.Errorf("%w: unexpected extension %q", ErrInvalidFile, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(src, head); err != nil || !bytes.Equal(head, pdfMagic) {
		return nil, fmt.Errorf("%w: not a PDF document", ErrInvalidFile)
	}

	name := uuid.NewString() + ".pdf"
	dst, err := os.Create(filepath.Join(c.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create stored file: %w", err)
	}

	if _, err := dst.Write(head); err != nil {
		dst.Close()
		c.Discard(name)
		return nil, fmt.Errorf("write stored file: %w", err)
	}
	if _, err := io.Copy(dst, io.LimitReader(src, MaxResumeSize)); err != nil {
		dst.Close()
		c.Discard(name)
		return nil, fmt.Errorf("write stored file: %w", err)
	}
	if err := dst.Close(); err != nil {
		c.Discard(name)
		return nil, fmt.Errorf("close stored file: %w", err)
	}

	return &StoredResume{
		Name:         name,
		OriginalName: filepath.Base(fh.Filename),
	}, nil
}

// Discard removes a stored file. Best effort: it runs on paths that are
// already failing, so problems are logged and never returned to avoid
// masking the primary error.
func (c *Custodian) Discard(name string) {
	path, err := c.Resolve(name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Error("resolve file for discard failed", zap.String("file", name), zap.Error(err))
		}
		return
	}

	if err := os.Remove(path); err != nil {
		logger.Error("discard stored file failed", zap.String("file", name), zap.Error(err))
	}
}

// Resolve maps a stored name to its on-disk path. Names are reduced to their
// base so a crafted name cannot escape the upload directory.
func (c *Custodian) Resolve(name string) (string, error) {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", ErrNotFound
	}

	path := filepath.Join(c.dir, base)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat stored file: %w", err)
	}

	return path, nil
}

// ExtractText pulls the plain text out of a stored PDF for the admin
// screening view.
func (c *Custodian) ExtractText(name string) (string, error) {
	path, err := c.Resolve(name)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read stored file: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, _ := page.GetPlainText(nil)
		text.WriteString(content)
	}

	return text.String(), nil
}
