// Package kernels holds the data-parallel workloads measured by the bench
// command. Each kernel takes a worker count (<= 0 means runtime.NumCPU()),
// fans out through package sched and returns what it computed.
package kernels
