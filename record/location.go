package record

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Scheme identifies the storage backend of a location.
type Scheme string

const (
	SchemeFile  Scheme = "file"
	SchemeS3    Scheme = "s3"
	SchemeMinIO Scheme = "minio"
)

// Location is a parsed dataset address.
type Location struct {
	Scheme Scheme
	Host   string // MinIO endpoint (host[:port])
	Bucket string
	Key    string // object key, or the file path for SchemeFile
}

// ParseLocation parses a plain path, file:// URL, s3://bucket/key or
// minio://host[:port]/bucket/key.
func ParseLocation(s string) (Location, error) {
	scheme, rest, ok := strings.Cut(s, "://")
	if !ok {
		return Location{Scheme: SchemeFile, Key: s}, nil
	}
	switch Scheme(strings.ToLower(scheme)) {
	case SchemeFile:
		return Location{Scheme: SchemeFile, Key: rest}, nil
	case SchemeS3:
		u, err := url.Parse(s)
		if err != nil {
			return Location{}, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s, err)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return Location{}, fmt.Errorf("%w: %s: want s3://bucket/key", ErrSourceUnavailable, s)
		}
		return Location{Scheme: SchemeS3, Bucket: u.Host, Key: key}, nil
	case SchemeMinIO:
		u, err := url.Parse(s)
		if err != nil {
			return Location{}, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s, err)
		}
		bucket, key, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" || key == "" {
			return Location{}, fmt.Errorf("%w: %s: want minio://host/bucket/key", ErrSourceUnavailable, s)
		}
		return Location{Scheme: SchemeMinIO, Host: u.Host, Bucket: bucket, Key: key}, nil
	}
	return Location{}, fmt.Errorf("%w: %s: unsupported scheme %q", ErrSourceUnavailable, s, scheme)
}

// Compression reports the codec implied by the key suffix: "zstd", "lz4" or "".
func (l Location) Compression() string {
	switch path.Ext(l.Key) {
	case ".zst", ".zstd":
		return "zstd"
	case ".lz4":
		return "lz4"
	}
	return ""
}

func (l Location) String() string {
	switch l.Scheme {
	case SchemeS3:
		return "s3://" + l.Bucket + "/" + l.Key
	case SchemeMinIO:
		return "minio://" + l.Host + "/" + l.Bucket + "/" + l.Key
	}
	return l.Key
}
