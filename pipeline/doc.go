// Package pipeline runs a two-stage producer/consumer reduction.
//
// The producer streams records from a dataset into a shared Buffer, one
// record at a time. The consumer repeatedly drains the buffer wholesale and
// adds the sum of dot products between consecutive records of each drained
// batch to an accumulator, fanning the batch out over a configurable number
// of workers. Batches are reduced independently: the pair formed by the last
// record of one batch and the first record of the next is not counted.
package pipeline
