package pxerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option     { return func(e *Error) { e.Message = msg } }
func WithElement(element string) Option { return func(e *Error) { e.Element = element } }
func WithValue(value string) Option     { return func(e *Error) { e.Value = value } }
