package rmcodec

import (
	"github.com/rawbytedev/rmcodec/pkg/bytestore"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/record"
	"github.com/rawbytedev/rmcodec/pkg/rm"
	"github.com/rawbytedev/rmcodec/pkg/snapshot"
)

// Errors returned by a Codec. Match them with errors.Is.
var (
	ErrStructuralValidation = rm.ErrStructuralValidation
	ErrOutOfRange           = bytestore.ErrOutOfRange
	ErrUnknownField         = control.ErrUnknownField
	ErrNoInstance           = control.ErrNoInstance
	ErrCorruptData          = field.ErrCorruptData
	ErrUnknownKind          = record.ErrUnknownKind
	ErrMissingValue         = record.ErrMissingValue
	ErrKindMismatch         = record.ErrKindMismatch
	ErrBadSnapshot          = snapshot.ErrBadMagic
	ErrSnapshotChecksum     = snapshot.ErrChecksum
)
