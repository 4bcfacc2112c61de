//go:build !term

package termview

import "fmt"

// App is a placeholder that satisfies the API expected by the terminal build.
type App struct{}

// New always fails in the stub build, indicating the term tag is required.
func New(cfg Config) (*App, error) {
	return nil, fmt.Errorf("termview.New requires building with the 'term' tag")
}

// Run is a no-op placeholder to satisfy the interface shape.
func (a *App) Run() {}
