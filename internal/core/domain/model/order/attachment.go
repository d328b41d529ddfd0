package order

import (
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Attachment is the metadata record for one uploaded asset, independent of
// where the bytes are physically stored. An attachment belongs either to the
// order itself (client upload) or to the order's delivered content (admin
// upload); the owner is set once at creation and never reassigned.
//
// Attachment is immutable after construction.
type Attachment struct {
	storedName   string
	originalName string
	mimeType     string
	sizeBytes    int64
	location     string

	id kernel.UUID
}

// NewAttachment creates an attachment record with validation.
// Empty files are not acceptable: sizeBytes must be greater than zero.
// The location is the opaque path or URL returned by the storage collaborator.
func NewAttachment(id kernel.UUID, storedName, originalName, mimeType string, sizeBytes int64, location string) (Attachment, error) {
	if err := id.Validate(); err != nil {
		return Attachment{}, err
	}
	if storedName == "" {
		return Attachment{}, errs.NewValueIsRequiredError("storedName")
	}
	if originalName == "" {
		return Attachment{}, errs.NewValueIsRequiredError("originalName")
	}
	if location == "" {
		return Attachment{}, errs.NewValueIsRequiredError("location")
	}
	if sizeBytes <= 0 {
		return Attachment{}, errs.NewValueIsInvalidErrorWithCause(
			"sizeBytes",
			fmt.Errorf("%d is not greater than 0", sizeBytes),
		)
	}

	return Attachment{
		id:           id,
		storedName:   storedName,
		originalName: originalName,
		mimeType:     mimeType,
		sizeBytes:    sizeBytes,
		location:     location,
	}, nil
}

// ID returns the attachment's unique identifier.
func (a Attachment) ID() kernel.UUID {
	return a.id
}

// StoredName returns the filename under which the asset was stored.
func (a Attachment) StoredName() string {
	return a.storedName
}

// OriginalName returns the filename the uploader supplied.
func (a Attachment) OriginalName() string {
	return a.originalName
}

// MimeType returns the declared content type of the asset.
func (a Attachment) MimeType() string {
	return a.mimeType
}

// SizeBytes returns the asset size in bytes. Always positive.
func (a Attachment) SizeBytes() int64 {
	return a.sizeBytes
}

// Location returns the opaque storage reference for the asset.
func (a Attachment) Location() string {
	return a.location
}
