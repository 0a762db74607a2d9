//go:build !statsview

package statsview

// Serve validates addr and reports ErrNotBuilt.
func Serve(addr string, onErr func(error)) (string, func(), error) {
	if _, _, err := Endpoint(addr); err != nil {
		return "", nil, err
	}
	return "", nil, ErrNotBuilt
}
