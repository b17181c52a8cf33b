package domain

// Describer is implemented by every entity that can render itself as
// human-readable text. The core never writes to the console; presentation
// layers call Describe and print the result themselves.
type Describer interface {
	Describe() string
}
