// Package export streams series zip exports from the archive into object
// storage.
//
// The archive can package a whole series as a zip on demand; this sink pipes
// that stream straight into a MinIO/S3 bucket without buffering it in
// memory, so bulk exports of large series stay cheap. The bucket is ensured
// at startup.
package export
