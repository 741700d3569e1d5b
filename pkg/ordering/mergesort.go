package ordering

// mergeSort orders seq in place using buf (len(buf) >= len(seq)) as scratch
// space. A merge is copied back into seq only once it completes, so seq stays
// a permutation of its input when cmp fails.
func mergeSort[T any](seq, buf []T, cmp FallibleComparator[T]) error {
	if len(seq) < 2 {
		return nil
	}

	middle := len(seq) / 2
	if err := mergeSort(seq[:middle], buf[:middle], cmp); err != nil {
		return err
	}
	if err := mergeSort(seq[middle:], buf[middle:], cmp); err != nil {
		return err
	}

	return merge(seq[:middle], seq[middle:], buf[:len(seq)], seq, cmp)
}

func merge[T any](left, right, out, dst []T, cmp FallibleComparator[T]) error {
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		c, err := cmp(left[l], right[r])
		if err != nil {
			return err
		}

		// Ties take from the left run.
		if c <= 0 {
			out[l+r] = left[l]
			l++
		} else {
			out[l+r] = right[r]
			r++
		}
	}
	for l < len(left) {
		out[l+r] = left[l]
		l++
	}
	for r < len(right) {
		out[l+r] = right[r]
		r++
	}

	copy(dst, out)
	return nil
}
