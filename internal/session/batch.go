package session

// DefaultBatchSize is the page size used when configuration does not
// override it.
const DefaultBatchSize = 10

// TotalBatches returns the number of fixed-size pages a view of the
// given length splits into: ceil(viewLen / batchSize), zero for an
// empty view.
func TotalBatches(viewLen, batchSize int) int {
	if viewLen <= 0 || batchSize <= 0 {
		return 0
	}
	return (viewLen + batchSize - 1) / batchSize
}

// batchBounds returns the half-open view range [start, end) of the
// given batch number, or an empty range when the batch is out of range.
func batchBounds(viewLen, batchSize, batch int) (int, int) {
	if viewLen <= 0 || batchSize <= 0 || batch < 0 {
		return 0, 0
	}
	start := batch * batchSize
	if start >= viewLen {
		return 0, 0
	}
	end := start + batchSize
	if end > viewLen {
		end = viewLen
	}
	return start, end
}
