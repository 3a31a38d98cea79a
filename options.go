package pix

// GridOption configures a Grid during creation.
//
// Example:
//
//	g, _ := pix.NewGrid(32, 32, pix.WithBackground(pix.Transparent))
type GridOption func(*gridOptions)

type gridOptions struct {
	background Color
}

func defaultGridOptions() gridOptions {
	// White matches the editor's traditional blank canvas.
	return gridOptions{background: White}
}

// WithBackground sets the background sentinel color used for new cells,
// resize expansion, and erasure.
func WithBackground(c Color) GridOption {
	return func(o *gridOptions) {
		o.background = c
	}
}

// ProjectOption configures a Project during creation.
type ProjectOption func(*projectOptions)

type projectOptions struct {
	grid    []GridOption
	palette *Palette
	id      string
}

func defaultProjectOptions() projectOptions {
	return projectOptions{}
}

// WithGridOptions forwards grid options to the project's grid.
//
// Example:
//
//	p, _ := pix.NewProject(16, 16,
//	    pix.WithGridOptions(pix.WithBackground(pix.Transparent)))
func WithGridOptions(opts ...GridOption) ProjectOption {
	return func(o *projectOptions) {
		o.grid = append(o.grid, opts...)
	}
}

// WithPalette sets the project's palette instead of the default one.
func WithPalette(p *Palette) ProjectOption {
	return func(o *projectOptions) {
		o.palette = p
	}
}

// WithID sets the project identifier instead of generating one. Used by
// the project codec to preserve identity across a load/save cycle.
func WithID(id string) ProjectOption {
	return func(o *projectOptions) {
		o.id = id
	}
}
