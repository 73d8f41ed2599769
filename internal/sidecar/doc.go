// Package sidecar defines the JSON metadata record stored beside each
// original media file, and the crash-safe persistence used to write it.
//
// A sidecar lives at <original>.json and is never written in place: the
// serialized record goes to <original>.json.tmp, is fsynced, and is then
// renamed over the target, so readers only ever observe a complete old or
// complete new record. Before an existing sidecar is replaced, the backup
// chain rotates: .json.bak2 becomes .json.bak3 (overwriting it), .json.bak1
// becomes .json.bak2, and the current sidecar becomes .json.bak1. History is
// bounded at three generations; the oldest backup is silently discarded.
//
// A leftover .json.tmp file is evidence of an interrupted write and is never
// a valid long-lived state; collaborators treat it as garbage.
//
// The original media file is never modified. The sidecar records its facts in
// the source section (path, size, content hash, modification time) and stamps
// a pipeline signature so downstream consumers can detect staleness when the
// schema or hash algorithm changes.
package sidecar
