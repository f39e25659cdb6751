// Package record reads and writes vector dataset files.
//
// A dataset is a whitespace-separated text stream: two integers
// "count dim" followed by count*dim real numbers in row-major record order.
// Datasets may live on the local disk (memory-mapped), in S3 (s3://bucket/key)
// or in a MinIO deployment (minio://host:port/bucket/key), and may be zstd
// (.zst) or lz4 (.lz4) compressed.
package record
