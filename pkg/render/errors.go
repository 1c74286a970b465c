package render

import "fmt"

// LoadErrorKind classifies what failed to load.
type LoadErrorKind int

const (
	// LoadFont means a font face source could not be parsed.
	LoadFont LoadErrorKind = iota
	// LoadImage means an image could not be created or decoded.
	LoadImage
)

func (k LoadErrorKind) String() string {
	switch k {
	case LoadFont:
		return "font"
	case LoadImage:
		return "image"
	default:
		return "unknown"
	}
}

// LoadError reports a failed asset or font load in the renderer.
// It never crosses into the animation engine; check it with errors.As.
type LoadError struct {
	Kind LoadErrorKind
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %v %q: %v", e.Kind, e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
