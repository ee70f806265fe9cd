package cloud

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Form accumulates a multipart form request body. Add calls chain; the
// first error sticks and surfaces when the request is built. Fields with
// empty values and nil readers are skipped, so optional inputs never
// produce empty parts on the wire.
type Form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

// NewForm returns an empty multipart form body.
func NewForm() *Form {
	f := &Form{}
	f.w = multipart.NewWriter(&f.buf)

	return f
}

// AddField appends a text part. Empty values are skipped.
func (f *Form) AddField(name, value string) *Form {
	if f.err != nil || value == "" {
		return f
	}
	f.err = f.w.WriteField(name, value)

	return f
}

// AddFile appends a file part read from r. A nil reader is skipped.
func (f *Form) AddFile(field, filename string, r io.Reader) *Form {
	if f.err != nil || r == nil {
		return f
	}

	part, err := f.w.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	if _, err := io.Copy(part, r); err != nil {
		f.err = err
	}

	return f
}

// encode finalizes the form, returning the body and its content type with
// the multipart boundary.
func (f *Form) encode() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if err := f.w.Close(); err != nil {
		return nil, "", err
	}

	return &f.buf, f.w.FormDataContentType(), nil
}
