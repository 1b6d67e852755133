package httpx

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var assetsFS embed.FS

// TemplateFS returns the embedded template tree rooted at templates/.
func TemplateFS() (fs.FS, error) {
	return fs.Sub(assetsFS, "templates")
}

// StaticFS returns the embedded static asset tree rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(assetsFS, "static")
}
