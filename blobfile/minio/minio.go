// Package minio provides a MinIO (and S3-compatible) backend for blobfile.
package minio

import (
	"context"

	"github.com/hupe1980/filekit/blobfile"
	"github.com/minio/minio-go/v7"
)

// Blob implements blobfile.Blob for a MinIO object.
type Blob struct {
	obj  *minio.Object
	size int64
}

var _ blobfile.Blob = (*Blob)(nil)

// Open verifies the object exists and returns a blob for it.
func Open(ctx context.Context, client *minio.Client, bucket, key string) (*Blob, error) {
	info, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, blobfile.ErrNotFound
		}
		return nil, err
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	return &Blob{obj: obj, size: info.Size}, nil
}

// Size returns the object size in bytes.
func (b *Blob) Size() int64 { return b.size }

// ReadAt reads from the object at the given offset.
func (b *Blob) ReadAt(p []byte, off int64) (int, error) {
	return b.obj.ReadAt(p, off)
}

// Close releases the underlying object reader.
func (b *Blob) Close() error {
	return b.obj.Close()
}
