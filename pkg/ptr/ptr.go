package ptr

// Deref возвращает значение по указателю или def, если указатель nil
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
