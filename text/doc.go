// Package text resolves font families to sized faces for UI text.
//
// A Registry is an explicitly constructed object owned by the engine; there
// is no process-wide font table. It starts with the Go fonts registered as
// "Go" and "Go Mono" and accepts any TTF/OTF data:
//
//	fonts, err := text.NewRegistry()
//	if err != nil {
//	    return err
//	}
//	defer fonts.Close()
//
//	face, err := fonts.Face("Go", 16)
//	w := face.Measure("Hello")
//
// Parsing and metrics use golang.org/x/image/font/opentype; advances come
// from HarfBuzz shaping in github.com/go-text/typesetting, so kerning and
// ligatures are reflected in measured widths.
package text
