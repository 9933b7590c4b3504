package shn

// channelState tracks the per-channel decode state that survives across
// blocks: recent pre-shift history for the predictors, a rolling window of
// block means for the DC-offset estimate, and the channel's position in
// the mean ring.
//
// history is sized max(nwrap, maxnlpc) rather than a fixed 3: the fixed
// predictors only ever look back 3 samples, but a QLPC block with an order
// greater than 3 needs that many samples of real history rather than
// zero-padding.
type channelState struct {
	history    []int64
	offset     []int64
	offsetNext int
}

func newChannelState(historyLen, nmean int) *channelState {
	if historyLen < nwrap {
		historyLen = nwrap
	}
	ringLen := nmean
	if ringLen < 1 {
		ringLen = 1
	}
	return &channelState{
		history: make([]int64, historyLen),
		offset:  make([]int64, ringLen),
	}
}

// meanOffset computes the DC-offset estimate shared by FN_DIFF0's coffset
// and FN_QLPC's offset_est: the rolling mean of stored block means,
// rounded with a truncated signed division. It is 0 when nmean is 0.
func (c *channelState) meanOffset(nmean int) int64 {
	if nmean <= 0 {
		return 0
	}
	var sum int64
	for _, m := range c.offset {
		sum += m
	}
	return (sum + int64(nmean>>1)) / int64(nmean)
}

// pushMean records a block's mean into the rolling window and advances
// the write cursor. nmean == 0 disables the window entirely, matching a
// v1 stream or an explicit nmean of 0.
func (c *channelState) pushMean(nmean int, mean int64) {
	if nmean <= 0 {
		return
	}
	c.offset[c.offsetNext] = mean
	c.offsetNext = (c.offsetNext + 1) % len(c.offset)
}

// finishBlock updates the channel's history and mean window from a fully
// decoded block of pre-shift samples. The block itself is left unchanged
// for the caller to interleave and bitshift at emission time.
func (c *channelState) finishBlock(block []int64, nmean int) {
	blocksize := len(block)

	var sum int64
	for _, s := range block {
		sum += s
	}
	mean := (sum + int64(blocksize>>1)) / int64(blocksize)
	c.pushMean(nmean, mean)

	historyLen := len(c.history)
	if blocksize >= historyLen {
		copy(c.history, block[blocksize-historyLen:])
	} else {
		copy(c.history, c.history[blocksize:])
		copy(c.history[historyLen-blocksize:], block)
	}
}
