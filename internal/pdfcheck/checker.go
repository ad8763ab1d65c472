// Package pdfcheck validates exported PDF files with pdfcpu.
package pdfcheck

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDF magic bytes
var pdfMagic = []byte("%PDF")

func init() {
	// Keep pdfcpu from creating a config directory in the user's home.
	api.DisableConfigDir()
}

// Checker validates PDF files and counts their pages
type Checker struct {
	strict bool
}

// Option configures a Checker
type Option func(*Checker)

// WithStrictValidation switches pdfcpu to strict validation mode
func WithStrictValidation(strict bool) Option {
	return func(c *Checker) {
		c.strict = strict
	}
}

// NewChecker creates a checker using relaxed validation unless overridden
func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if c.strict {
		conf.ValidationMode = model.ValidationStrict
	} else {
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}

// CheckFile validates the PDF at path.
// The returned error is non-nil whenever the result is not valid.
func (c *Checker) CheckFile(path string) (*Result, error) {
	result := NewResult(path)

	data, err := os.ReadFile(path)
	if err != nil {
		result.AddError(fmt.Sprintf("failed to read file: %v", err))
		return result, fmt.Errorf("read %s: %w", path, err)
	}
	result.Size = int64(len(data))

	if err := c.check(bytes.NewReader(data), result); err != nil {
		return result, fmt.Errorf("check %s: %w", path, err)
	}
	return result, nil
}

// CheckBytes validates an in-memory PDF
func (c *Checker) CheckBytes(data []byte) (*Result, error) {
	result := NewResult("")
	result.Size = int64(len(data))
	if err := c.check(bytes.NewReader(data), result); err != nil {
		return result, err
	}
	return result, nil
}

func (c *Checker) check(rs io.ReadSeeker, result *Result) error {
	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(rs, head); err != nil || !bytes.Equal(head, pdfMagic) {
		result.AddError("not a PDF file")
		return fmt.Errorf("not a PDF file")
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		result.AddError(err.Error())
		return err
	}

	if err := api.Validate(rs, c.configuration()); err != nil {
		result.AddError(fmt.Sprintf("validation failed: %v", err))
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		result.AddError(err.Error())
		return err
	}
	pages, err := api.PageCount(rs, c.configuration())
	if err != nil {
		result.AddError(fmt.Sprintf("failed to count pages: %v", err))
		return fmt.Errorf("count pages: %w", err)
	}
	if pages == 0 {
		result.AddError("document has no pages")
		return fmt.Errorf("document has no pages")
	}

	result.Pages = pages
	result.Valid = true
	return nil
}
