package mock

// MockThumbnailer implements preview generation for tests.
type MockThumbnailer struct {
	Out []byte
	Err error

	Called bool
	In     []byte
}

func (m *MockThumbnailer) Generate(data []byte) ([]byte, error) {
	m.Called = true
	m.In = data
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}
