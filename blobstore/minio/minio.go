// Package minio provides a blobstore.Store backed by MinIO or any
// S3-compatible endpoint.
package minio

import (
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/lexgo/blobstore"
)

// Options configures the MinIO store.
type Options struct {
	// Prefix is prepended to all keys (e.g. "corpora/").
	Prefix string
	// AccessKey and SecretKey are static credentials. When empty, the
	// environment credential chain is used.
	AccessKey string
	SecretKey string
	// Secure enables TLS.
	Secure bool
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithCredentials sets static credentials.
func WithCredentials(accessKey, secretKey string) func(*Options) {
	return func(o *Options) {
		o.AccessKey = accessKey
		o.SecretKey = secretKey
	}
}

// WithSecure enables TLS.
func WithSecure(secure bool) func(*Options) {
	return func(o *Options) {
		o.Secure = secure
	}
}

// Store implements blobstore.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates a MinIO store for the given endpoint and bucket.
func New(endpoint, bucket string, optFns ...func(*Options)) (*Store, error) {
	var o Options
	for _, fn := range optFns {
		fn(&o)
	}

	creds := credentials.NewEnvMinio()
	if o.AccessKey != "" {
		creds = credentials.NewStaticV4(o.AccessKey, o.SecretKey, "")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: o.Secure,
	})
	if err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		bucket: bucket,
		prefix: o.Prefix,
	}, nil
}

// NewWithClient wraps a preconfigured MinIO client.
func NewWithClient(client *minio.Client, bucket, prefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens the named object for reading.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	// Stat first so a missing object surfaces as ErrNotFound instead of
	// failing on the first read.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}
