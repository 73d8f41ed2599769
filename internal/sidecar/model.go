package sidecar

import (
	"time"
)

const (
	// SchemaVersion is the current sidecar schema version. Bumped when the
	// sidecar structure changes; the migrate collaborator upgrades older
	// records.
	SchemaVersion = "1.0.0"

	// HashAlgorithm identifies the content hash algorithm recorded in the
	// pipeline signature.
	HashAlgorithm = "blake2b-256"
)

// ProducerVersion is the photoscan version stamped into new sidecars.
// Overridden at build time via -ldflags "-X photoscan/internal/sidecar.ProducerVersion=...".
var ProducerVersion = "0.1.0"

// Timestamp formats t as the RFC3339 UTC string used for all sidecar
// timestamps.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// SourceInfo holds immutable facts about the original file at scan time.
// It is derived only from direct filesystem inspection and changes only by
// re-scanning.
type SourceInfo struct {
	// FilePath is the path to the original file, as provided during scan.
	FilePath string `json:"file_path"`

	// FileSizeBytes is used for quick change detection before computing
	// the full hash.
	FileSizeBytes uint64 `json:"file_size_bytes"`

	// FileHash is the content hash in lowercase hex, used for duplicate
	// detection and integrity verification.
	FileHash string `json:"file_hash"`

	// FileModifiedAt is the filesystem modification timestamp (RFC3339).
	FileModifiedAt string `json:"file_modified_at"`
}

// PipelineSignature records which schema, producer, and model versions
// produced a sidecar. The verify collaborator compares the stored signature
// against the current one to decide whether a rescan is needed.
type PipelineSignature struct {
	SchemaVersion   string `json:"schema_version"`
	ProducerVersion string `json:"producer_version"`
	HashAlgorithm   string `json:"hash_algorithm"`

	// FaceModel is set when the faces collaborator has run (e.g., "arcface-1.4").
	FaceModel string `json:"face_model,omitempty"`

	// TagModel is set when the tags collaborator has run (e.g., "clip-vit-b32").
	TagModel string `json:"tag_model,omitempty"`

	CreatedAt string `json:"created_at"`
}

// NewSignature returns the signature for a sidecar produced right now by the
// current pipeline configuration.
func NewSignature(now time.Time) PipelineSignature {
	return PipelineSignature{
		SchemaVersion:   SchemaVersion,
		ProducerVersion: ProducerVersion,
		HashAlgorithm:   HashAlgorithm,
		CreatedAt:       Timestamp(now),
	}
}

// IsCompatibleWith reports whether two signatures are compatible: equal
// schema version and hash algorithm. Producer and model identifiers may
// differ without breaking compatibility. This relation is deliberately weaker
// than equality; it is the basis for staleness decisions.
func (s PipelineSignature) IsCompatibleWith(other PipelineSignature) bool {
	return s.SchemaVersion == other.SchemaVersion &&
		s.HashAlgorithm == other.HashAlgorithm
}

// FaceDetection is populated by the faces collaborator.
type FaceDetection struct {
	// BBox is [x, y, width, height] normalized to the 0-1 range.
	BBox [4]float32 `json:"bbox"`

	// Score is the detection confidence (0-1).
	Score float32 `json:"score"`

	// EmbeddingHash is a hash of the face embedding vector, allowing
	// matching without storing raw embeddings.
	EmbeddingHash string `json:"embedding_hash,omitempty"`

	// Person is the identified person name, when identification ran.
	Person string `json:"person,omitempty"`
}

// TagSource indicates how a tag was assigned.
type TagSource string

const (
	// TagSourceML marks a tag assigned by a machine learning model.
	TagSourceML TagSource = "ml"
	// TagSourceRules marks a tag assigned by rule-based logic.
	TagSourceRules TagSource = "rules"
	// TagSourceUser marks a tag added manually.
	TagSourceUser TagSource = "user"
)

// Tag is populated by the tags collaborator.
type Tag struct {
	Label string `json:"label"`

	// Score is the confidence for ML-assigned tags; zero for rule-based
	// and user tags.
	Score float32 `json:"score,omitempty"`

	Source TagSource `json:"source"`
}

// ThumbnailInfo is populated by the thumbs collaborator.
type ThumbnailInfo struct {
	// Path to the thumbnail file, typically adjacent to the original with
	// a size suffix (e.g., "IMG_1234_256.jpg").
	Path string `json:"path"`

	// Size is the thumbnail edge length in pixels.
	Size uint32 `json:"size"`

	// Format is "jpg" or "webp".
	Format string `json:"format"`
}

// ImageInfo holds metadata extracted from image headers. All fields are
// optional; the scan core leaves the whole block unset and a downstream
// collaborator fills it in.
type ImageInfo struct {
	Width            uint32  `json:"width,omitempty"`
	Height           uint32  `json:"height,omitempty"`
	Format           string  `json:"format,omitempty"`
	Orientation      uint8   `json:"orientation,omitempty"`
	DatetimeOriginal string  `json:"datetime_original,omitempty"`
	CameraMake       string  `json:"camera_make,omitempty"`
	CameraModel      string  `json:"camera_model,omitempty"`
	GPSLatitude      float64 `json:"gps_latitude,omitempty"`
	GPSLongitude     float64 `json:"gps_longitude,omitempty"`
}

// Sidecar is the persisted unit of metadata for one original file.
//
// Lifecycle: created by a successful scan. CreatedAt is set once and never
// changes; UpdatedAt changes on every re-scan or collaborator update. The
// record is destroyed only by explicit cleanup, never by scan itself.
type Sidecar struct {
	SchemaVersion     string            `json:"schema_version"`
	ProducerVersion   string            `json:"producer_version"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
	PipelineSignature PipelineSignature `json:"pipeline_signature"`
	Source            SourceInfo        `json:"source"`

	// Image is filled by a downstream collaborator; nil at creation.
	Image *ImageInfo `json:"image,omitempty"`

	// Faces, Tags, and Thumbnails are populated by downstream
	// collaborators; empty at creation.
	Faces      []FaceDetection `json:"faces"`
	Tags       []Tag           `json:"tags"`
	Thumbnails []ThumbnailInfo `json:"thumbnails"`
}

// New assembles a fresh sidecar for the given source facts, stamped at now.
// CreatedAt equals UpdatedAt on a newly created record.
func New(source SourceInfo, now time.Time) *Sidecar {
	ts := Timestamp(now)
	return &Sidecar{
		SchemaVersion:     SchemaVersion,
		ProducerVersion:   ProducerVersion,
		CreatedAt:         ts,
		UpdatedAt:         ts,
		PipelineSignature: NewSignature(now),
		Source:            source,
		Faces:             []FaceDetection{},
		Tags:              []Tag{},
		Thumbnails:        []ThumbnailInfo{},
	}
}

// Touch updates UpdatedAt to now. Collaborators call this before persisting
// a modified record.
func (s *Sidecar) Touch(now time.Time) {
	s.UpdatedAt = Timestamp(now)
}
