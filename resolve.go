package colreplace

// ColumnIndex returns the zero-based position of the first header field equal to
// name. Comparison is exact: no trimming and no case folding.
func ColumnIndex(header []string, name string) (int, error) {
	for i, field := range header {
		if field == name {
			return i, nil
		}
	}
	return -1, &ColumnError{Name: name}
}
