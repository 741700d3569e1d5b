package util

// Copy duplicates the top level of slice. Pointers, maps and slices held by
// the elements are shared with the original.
func Copy[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	copied := make([]T, len(slice))
	copy(copied, slice)
	return copied
}

// CopyWith copies slice and passes every element through clone, which lets
// callers detach nested values that Copy would share.
func CopyWith[T any](slice []T, clone func(T) T) []T {
	if slice == nil {
		return nil
	}
	copied := make([]T, len(slice))
	for i, item := range slice {
		copied[i] = clone(item)
	}
	return copied
}
