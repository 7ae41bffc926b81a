// Package costing holds the pure arithmetic of production costing: locking in
// material cost at debit time, allocating labor and overhead to produced
// output, weighted-average blending of stock unit costs and yield ratios.
//
// Every result is rounded to Scale decimal places, the precision of the
// decimal(18,4) columns it is stored in, so a value computed in memory is
// identical to the value read back from the store.
package costing
