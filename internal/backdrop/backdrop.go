// Package backdrop imports the reference image shown behind the chart.
// Images are read fully into memory and handed to the UI as-is: no
// validation, resizing or compression.
package backdrop

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// Image is an imported backdrop.
type Image struct {
	Name string
	Data []byte
	// Path is the file the image was read from, if it came from disk.
	Path string
}

// Read reads r fully. A nil reader means no file was selected and yields a
// nil image without error.
func Read(name string, r io.Reader) (*Image, error) {
	if r == nil {
		return nil, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", name, err)
	}
	log.Printf("[BACKDROP] Read %d bytes from %s", len(data), name)
	return &Image{Name: name, Data: data}, nil
}

// ReadFile reads the image at path.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := Read(filepath.Base(path), f)
	if err != nil {
		return nil, err
	}
	img.Path = path
	return img, nil
}

// FromURI reads the image behind a file dialog result and closes it. A nil
// reader (dialog cancelled) yields a nil image without error.
func FromURI(rc fyne.URIReadCloser) (*Image, error) {
	if rc == nil {
		return nil, nil
	}
	defer func() {
		if err := rc.Close(); err != nil {
			log.Printf("[BACKDROP] Error closing reader: %v", err)
		}
	}()

	img, err := Read(rc.URI().Name(), rc)
	if err != nil {
		return nil, err
	}
	if rc.URI().Scheme() == "file" {
		img.Path = rc.URI().Path()
	}
	return img, nil
}

// Resource exposes the image for canvas.NewImageFromResource.
func (i *Image) Resource() fyne.Resource {
	return fyne.NewStaticResource(i.Name, i.Data)
}
