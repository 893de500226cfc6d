package details

import "time"

type DocumentFields struct {
	Name          string    `json:"name"`
	DocumentType  string    `json:"document_type"`
	FileReference string    `json:"file_reference"`
	MimeType      string    `json:"mime_type"`
	UploadedAt    time.Time `json:"uploaded_at"`
	UploadedBy    string    `json:"uploaded_by"`
	Description   string    `json:"description,omitempty"`
	FileSizeBytes *int64    `json:"file_size_bytes,omitempty"`
	Confidential  bool      `json:"confidential"`
	Checksum      string    `json:"checksum,omitempty"`
}

// DocumentDetails es un artefacto append-only: nunca se corrige, se sube uno nuevo.
type DocumentDetails struct {
	f DocumentFields
	built
}

func (DocumentDetails) isDetail() {}

func (DocumentDetails) Kind() MedicalRecordType { return TypeDocument }

func (d DocumentDetails) Fields() DocumentFields {
	out := d.f
	out.FileSizeBytes = cloneInt64(d.f.FileSizeBytes)
	return out
}

func (d DocumentDetails) Validate(today time.Time) error {
	f := d.f
	if blank(f.Name) {
		return invalid(TypeDocument, "name", "is required")
	}
	if blank(f.DocumentType) {
		return invalid(TypeDocument, "document_type", "is required")
	}
	if blank(f.FileReference) {
		return invalid(TypeDocument, "file_reference", "is required")
	}
	if blank(f.MimeType) {
		return invalid(TypeDocument, "mime_type", "is required")
	}
	if f.UploadedAt.IsZero() {
		return invalid(TypeDocument, "uploaded_at", "is required")
	}
	if afterDay(f.UploadedAt, today) {
		return invalid(TypeDocument, "uploaded_at", "must not be in the future")
	}
	if blank(f.UploadedBy) {
		return invalid(TypeDocument, "uploaded_by", "is required")
	}
	if f.FileSizeBytes != nil && *f.FileSizeBytes <= 0 {
		return invalid(TypeDocument, "file_size_bytes", "must be positive")
	}
	if f.Confidential && blank(f.Description) {
		return invalid(TypeDocument, "description", "is required for confidential documents")
	}
	return nil
}

// CanCorrect siempre es false (una vez verificado el tipo).
func (d DocumentDetails) CanCorrect(previous Detail) (bool, error) {
	if _, ok := previous.(DocumentDetails); !ok {
		return false, typeMismatch(TypeDocument, previous)
	}
	return false, nil
}

func (DocumentDetails) ApplyAction(MedicalRecordStatus, RecordAction) (StatusChangeResult, error) {
	return rejectStatusAction(TypeDocument)
}
