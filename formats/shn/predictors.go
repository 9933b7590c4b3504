package shn

// fixedCoeffs holds the coefficients for the DIFF0..DIFF3 fixed predictors:
// prediction = sum(coeffs[i] * sample[-(i+1)]). DIFF0's entry is unused;
// its prediction is the DC offset, handled separately.
var fixedCoeffs = [4][3]int64{
	{0, 0, 0},
	{1, 0, 0},
	{2, -1, 0},
	{3, -3, 1},
}

// readResiduals reads a block's shared Rice parameter and its blocksize
// residuals: energy = uvar(ENERGYSIZE), then one var(energy) per sample.
func readResiduals(br *bitReader, blocksize int) ([]int64, error) {
	energy, err := uvar(br, energySize)
	if err != nil {
		return nil, err
	}
	residuals := make([]int64, blocksize)
	for i := range residuals {
		r, err := svar(br, int(energy))
		if err != nil {
			return nil, err
		}
		residuals[i] = int64(r)
	}
	return residuals, nil
}

// decodeFixedBlock reconstructs a block using one of the DIFF0..DIFF3
// fixed predictors, returning blocksize pre-shift samples.
func decodeFixedBlock(br *bitReader, order int, cs *channelState, nmean, blocksize int) ([]int64, error) {
	residuals, err := readResiduals(br, blocksize)
	if err != nil {
		return nil, err
	}

	coffset := int64(0)
	if order == 0 {
		coffset = cs.meanOffset(nmean)
	}

	coeffs := fixedCoeffs[order]
	work := make([]int64, nwrap+blocksize)
	copy(work[:nwrap], cs.history[len(cs.history)-nwrap:])

	for i := 0; i < blocksize; i++ {
		pos := nwrap + i
		var prediction int64
		if order == 0 {
			prediction = coffset
		} else {
			for j := 0; j < order; j++ {
				prediction += coeffs[j] * work[pos-j-1]
			}
		}
		work[pos] = residuals[i] + prediction
	}

	return work[nwrap:], nil
}

// decodeZeroBlock returns a silent block of the given length; FN_ZERO
// still updates history and the mean window via the normal finishBlock path.
func decodeZeroBlock(blocksize int) []int64 {
	return make([]int64, blocksize)
}

// decodeQLPCBlock reconstructs a block using quantized LPC prediction: the
// coefficients and history are worked in a DC-offset-removed coordinate
// space (offsetEst subtracted, then re-added once the recurrence is done)
// so the fixed-point multiply-accumulate stays centered near zero.
func decodeQLPCBlock(br *bitReader, maxnlpc int, cs *channelState, nmean, blocksize int) ([]int64, error) {
	order, err := uvar(br, lpcqSize)
	if err != nil {
		return nil, err
	}
	if int(order) > maxnlpc {
		return nil, ErrInvalidData
	}

	coeffs := make([]int64, order)
	for i := range coeffs {
		c, err := svar(br, lpcqSize)
		if err != nil {
			return nil, err
		}
		coeffs[i] = int64(c)
	}

	residuals, err := readResiduals(br, blocksize)
	if err != nil {
		return nil, err
	}

	offsetEst := cs.meanOffset(nmean)

	n := int(order)
	work := make([]int64, n+blocksize)
	if n > 0 {
		tail := cs.history[len(cs.history)-n:]
		for i, s := range tail {
			work[i] = s - offsetEst
		}
	}

	const bias = 1 << (lpcquant - 1)
	for i := 0; i < blocksize; i++ {
		pos := n + i
		sum := int64(bias)
		for j := 0; j < n; j++ {
			sum += coeffs[j] * work[pos-j-1]
		}
		work[pos] = residuals[i] + (sum >> lpcquant)
	}

	block := work[n:]
	for i := range block {
		block[i] += offsetEst
	}
	return block, nil
}
