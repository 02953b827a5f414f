package ptr

// To returns a pointer to v. Mostly used to build patch payloads inline.
func To[T any](v T) *T {
	return &v
}
