package mock

import "github.com/fwojciec/unitext"

var _ unitext.Converter = (*Converter)(nil)

// Converter is a mock implementation of unitext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
