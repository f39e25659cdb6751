package record

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
	"github.com/pierrec/lz4/v4"
)

// Opener opens the raw bytes of a dataset location.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, location string) (io.ReadCloser, error)

func (f OpenerFunc) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	return f(ctx, location)
}

// Storage dispatches a location to the local filesystem, S3 or MinIO and
// decompresses .zst and .lz4 objects. Remote clients are created on first use
// unless supplied.
type Storage struct {
	S3    S3Client
	MinIO func(endpoint string) (*minio.Client, error)

	mu    sync.Mutex
	minio map[string]*minio.Client
}

// DefaultStorage is the Opener used when none is configured.
var DefaultStorage = &Storage{}

// Open implements Opener. Every failure matches ErrSourceUnavailable.
func (s *Storage) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}
	rc, err := s.openRaw(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, location, err)
	}
	rc, err = decompress(rc, loc.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, location, err)
	}
	return rc, nil
}

func (s *Storage) openRaw(ctx context.Context, loc Location) (io.ReadCloser, error) {
	switch loc.Scheme {
	case SchemeS3:
		client, err := s.s3Client(ctx)
		if err != nil {
			return nil, err
		}
		return openS3(ctx, client, loc)
	case SchemeMinIO:
		client, err := s.minioClient(loc.Host)
		if err != nil {
			return nil, err
		}
		return openMinIO(ctx, client, loc)
	}
	return openMmap(loc.Key)
}

func (s *Storage) s3Client(ctx context.Context) (S3Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.S3 == nil {
		c, err := NewS3Client(ctx)
		if err != nil {
			return nil, err
		}
		s.S3 = c
	}
	return s.S3, nil
}

func (s *Storage) minioClient(endpoint string) (*minio.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.minio[endpoint]; ok {
		return c, nil
	}
	newClient := s.MinIO
	if newClient == nil {
		newClient = NewMinIOClient
	}
	c, err := newClient(endpoint)
	if err != nil {
		return nil, err
	}
	if s.minio == nil {
		s.minio = make(map[string]*minio.Client)
	}
	s.minio[endpoint] = c
	return c, nil
}

// readCloser pairs a decoding reader with the close of its underlying stream.
type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

func decompress(rc io.ReadCloser, codec string) (io.ReadCloser, error) {
	switch codec {
	case "zstd":
		dec, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}
		return readCloser{Reader: dec, close: func() error {
			dec.Close()
			return rc.Close()
		}}, nil
	case "lz4":
		return readCloser{Reader: lz4.NewReader(rc), close: rc.Close}, nil
	}
	return rc, nil
}
