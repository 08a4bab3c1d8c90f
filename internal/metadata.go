package internal

import (
	"fmt"
	"os"

	exiftool "github.com/barasher/go-exiftool"
	"github.com/rwcarlsen/goexif/exif"
)

// FieldMap holds decoded metadata fields keyed by canonical field name.
type FieldMap map[string]string

// MetadataReader decodes the embedded metadata of an image file into a
// FieldMap. Implementations return an error only when the file cannot be
// read or carries no parseable metadata at all; individual missing
// fields are simply absent from the map.
type MetadataReader interface {
	Fields(path string) (FieldMap, error)
}

// ExifReader decodes EXIF metadata with the pure-Go goexif library.
type ExifReader struct{}

// goexif tag -> canonical field name
var exifTagNames = []struct {
	tag  exif.FieldName
	name string
}{
	{exif.DateTimeOriginal, "EXIF DateTimeOriginal"},
	{exif.DateTimeDigitized, "EXIF DateTime"},
	{exif.DateTime, "Image DateTime"},
}

func (ExifReader) Fields(path string) (FieldMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exif: %w", err)
	}

	fields := make(FieldMap)
	for _, t := range exifTagNames {
		tag, err := x.Get(t.tag)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		fields[t.name] = s
	}
	return fields, nil
}

// ExiftoolReader decodes metadata by driving the exiftool binary. It
// handles formats goexif does not, at the cost of an external process.
type ExiftoolReader struct {
	et *exiftool.Exiftool
}

// NewExiftoolReader starts a long-lived exiftool process. Callers must
// Close the reader when the run is done.
func NewExiftoolReader() (*ExiftoolReader, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("failed to start exiftool: %w", err)
	}
	return &ExiftoolReader{et: et}, nil
}

// exiftool key -> canonical field name
var exiftoolKeyNames = []struct {
	key  string
	name string
}{
	{"DateTimeOriginal", "EXIF DateTimeOriginal"},
	{"CreateDate", "EXIF DateTime"},
	{"ModifyDate", "Image DateTime"},
}

func (r *ExiftoolReader) Fields(path string) (FieldMap, error) {
	metas := r.et.ExtractMetadata(path)
	if len(metas) == 0 {
		return nil, fmt.Errorf("exiftool returned no metadata for %s", path)
	}
	if metas[0].Err != nil {
		return nil, fmt.Errorf("exiftool: %w", metas[0].Err)
	}

	fields := make(FieldMap)
	for _, k := range exiftoolKeyNames {
		if v, err := metas[0].GetString(k.key); err == nil {
			fields[k.name] = v
		}
	}
	return fields, nil
}

func (r *ExiftoolReader) Close() error {
	return r.et.Close()
}
