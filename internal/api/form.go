package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// FileRef points at a file on disk for a multipart upload. Only the
// reference travels through the Form; bytes are streamed at send time,
// never held in memory.
type FileRef struct {
	Path        string
	FileName    string // defaults to the base name of Path
	ContentType string // defaults to image/jpeg, the dominant upload type
}

// Form is an ordered multipart payload. Fields and files are written in
// the exact order they were appended.
type Form struct {
	parts []formPart
}

type formPart struct {
	name  string
	value string
	file  *FileRef
}

// NewForm creates an empty multipart payload.
func NewForm() *Form {
	return &Form{}
}

// AddField appends a text field.
func (f *Form) AddField(name, value string) *Form {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// AddFields appends every entry of fields, skipping empty values the way
// the profile update flow expects.
func (f *Form) AddFields(fields [][2]string) *Form {
	for _, kv := range fields {
		if kv[1] == "" {
			continue
		}
		f.AddField(kv[0], kv[1])
	}
	return f
}

// AddFile appends a file reference under the given field name.
func (f *Form) AddFile(name string, ref FileRef) *Form {
	r := ref
	f.parts = append(f.parts, formPart{name: name, file: &r})
	return f
}

// Len returns the number of appended parts.
func (f *Form) Len() int {
	return len(f.parts)
}

// encode returns a reader that produces the multipart body, streaming
// file parts from disk through a pipe, and the matching content type.
func (f *Form) encode() (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(f.write(mw))
	}()

	return pr, mw.FormDataContentType()
}

func (f *Form) write(mw *multipart.Writer) error {
	for _, p := range f.parts {
		if p.file == nil {
			if err := mw.WriteField(p.name, p.value); err != nil {
				return fmt.Errorf("failed to write form field %s: %w", p.name, err)
			}
			continue
		}
		if err := writeFilePart(mw, p.name, *p.file); err != nil {
			return err
		}
	}
	return mw.Close()
}

func writeFilePart(mw *multipart.Writer, field string, ref FileRef) error {
	fileName := ref.FileName
	if fileName == "" {
		fileName = filepath.Base(ref.Path)
	}
	contentType := ref.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(field), escapeQuotes(fileName)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create form part %s: %w", field, err)
	}

	src, err := os.Open(ref.Path)
	if err != nil {
		return fmt.Errorf("failed to open upload file %s: %w", ref.Path, err)
	}
	defer src.Close()

	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("failed to stream upload file %s: %w", ref.Path, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
