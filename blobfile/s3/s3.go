// Package s3 provides an AWS S3 backend for blobfile using ranged
// GetObject requests, so a search or read touches only the byte ranges it
// actually needs.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/filekit"
	"github.com/hupe1980/filekit/blobfile"
)

// NewClient creates an S3 client from the default AWS configuration chain
// (environment, shared config, instance metadata).
func NewClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// Blob implements blobfile.Blob for an S3 object.
type Blob struct {
	client *s3.Client
	bucket string
	key    string
	size   int64
}

var _ blobfile.Blob = (*Blob)(nil)

// Open verifies the object exists and returns a blob for it.
func Open(ctx context.Context, client *s3.Client, bucket, key string) (*Blob, error) {
	head, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, blobfile.ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, blobfile.ErrNotFound
		}
		return nil, err
	}

	return &Blob{
		client: client,
		bucket: bucket,
		key:    key,
		size:   *head.ContentLength,
	}, nil
}

// Size returns the object size in bytes.
func (b *Blob) Size() int64 { return b.size }

// ReadAt fetches the requested range with a single ranged GetObject.
func (b *Blob) ReadAt(p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}

	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	rangeHeader := fmt.Sprintf("bytes=%d-%d", off, end)

	resp, err := b.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
		Range:  aws.String(rangeHeader),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.ReadFull(resp.Body, p)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		if off+int64(n) >= b.size {
			return n, io.EOF
		}
		return n, err
	}
	return n, err
}

// Upload streams the remaining contents of f (from its current position)
// to bucket/key using the S3 upload manager. It is a convenience for
// persisting a patched handle back to the object store.
func Upload(ctx context.Context, client *s3.Client, bucket, key string, f filekit.File) error {
	pr, pw := io.Pipe()

	go func() {
		buf := make([]byte, 64*1024)
		for {
			n, st := filekit.ReadFully(f, buf)
			if st < filekit.StatusOK {
				err := fmt.Errorf("read failed with status %s", st)
				if fe := f.Err(); fe != nil {
					err = fe
				}
				_ = pw.CloseWithError(err)
				return
			}
			if n > 0 {
				if _, err := pw.Write(buf[:n]); err != nil {
					return
				}
			}
			if n < len(buf) {
				_ = pw.Close()
				return
			}
		}
	}()

	uploader := manager.NewUploader(client)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   pr,
	})
	_ = pr.CloseWithError(err)
	return err
}
