package watch

// Renderer produces a complete report
type Renderer interface {
	Render() ([]byte, error)
}

// Sink receives every rendered report
type Sink interface {
	Write(report []byte) error
}
