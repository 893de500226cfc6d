package details

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() DocumentFields {
	return DocumentFields{
		Name:          "Blood panel",
		DocumentType:  "lab-report",
		FileReference: "s3://vet-docs/pets/milo/blood-panel.pdf",
		MimeType:      "application/pdf",
		UploadedAt:    date(2026, 3, 1),
		UploadedBy:    "dr-perez",
		FileSizeBytes: ptr(int64(20480)),
		Checksum:      "sha256:abc123",
	}
}

func TestDocument_SingleFieldViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DocumentFields)
		field  string
	}{
		{"blank name", func(f *DocumentFields) { f.Name = "" }, "name"},
		{"blank type", func(f *DocumentFields) { f.DocumentType = " " }, "document_type"},
		{"blank file reference", func(f *DocumentFields) { f.FileReference = "" }, "file_reference"},
		{"missing mime type", func(f *DocumentFields) { f.MimeType = "" }, "mime_type"},
		{"blank mime type", func(f *DocumentFields) { f.MimeType = "  " }, "mime_type"},
		{"missing upload date", func(f *DocumentFields) { f.UploadedAt = time.Time{} }, "uploaded_at"},
		{"future upload date", func(f *DocumentFields) { f.UploadedAt = today.AddDate(0, 1, 0) }, "uploaded_at"},
		{"blank uploader", func(f *DocumentFields) { f.UploadedBy = "" }, "uploaded_by"},
		{"zero file size", func(f *DocumentFields) { f.FileSizeBytes = ptr(int64(0)) }, "file_size_bytes"},
		{"negative file size", func(f *DocumentFields) { f.FileSizeBytes = ptr(int64(-1)) }, "file_size_bytes"},
		{"confidential without description", func(f *DocumentFields) { f.Confidential = true }, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validDocument()
			tt.mutate(&f)
			_, err := testFactory().NewDocument(f)
			requireInvalidField(t, err, tt.field)
		})
	}
}

func TestDocument_OptionalFields(t *testing.T) {
	f := validDocument()
	f.FileSizeBytes = nil
	f.Checksum = ""
	_, err := testFactory().NewDocument(f)
	require.NoError(t, err)

	f.Confidential = true
	f.Description = "Contains owner contact data"
	_, err = testFactory().NewDocument(f)
	require.NoError(t, err)
}

func TestDocument_NeverCorrectable(t *testing.T) {
	fac := testFactory()
	a, err := fac.NewDocument(validDocument())
	require.NoError(t, err)

	other := validDocument()
	other.Name = "Blood panel (v2)"
	other.FileReference = "s3://vet-docs/pets/milo/blood-panel-v2.pdf"
	b, err := fac.NewDocument(other)
	require.NoError(t, err)

	for _, pair := range [][2]DocumentDetails{{a, a}, {a, b}, {b, a}} {
		ok, err := pair[0].CanCorrect(pair[1])
		require.NoError(t, err)
		assert.False(t, ok)
	}

	v, err := fac.NewVaccine(validVaccine())
	require.NoError(t, err)
	_, err = a.CanCorrect(v)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDocument_ApplyActionIsUnsupported(t *testing.T) {
	d, err := testFactory().NewDocument(validDocument())
	require.NoError(t, err)

	for _, a := range []RecordAction{ActionActivate, ActionFinish, ActionDischarge} {
		_, err := d.ApplyAction(StatusActive, a)
		require.ErrorIs(t, err, ErrUnsupportedOperation)
	}
}
