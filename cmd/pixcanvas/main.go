// Command pixcanvas drives the pix engine from the command line: it
// creates projects, applies tools, and exports artwork. It stands in
// for the editor GUI as the owner of session state (active tool, active
// color), which the engine deliberately does not hold.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/pixelcanvas/pix"
)

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	New    newCmd    `cmd:"" help:"Create an empty project file."`
	Info   infoCmd   `cmd:"" help:"Print a project summary."`
	Apply  applyCmd  `cmd:"" help:"Apply a tool to a project at a cell."`
	Export exportCmd `cmd:"" help:"Export a project as PNG or PDF."`
	Brush  brushCmd  `cmd:"" help:"Inspect an image file as a brush source."`
}

type newCmd struct {
	Width      int    `arg:"" help:"Grid width in cells."`
	Height     int    `arg:"" help:"Grid height in cells."`
	Out        string `short:"o" required:"" help:"Project file to write."`
	Background string `default:"#ffffff" help:"Background color (hex)."`
}

func (c *newCmd) Run(logger *slog.Logger) error {
	bg, err := pix.Hex(c.Background)
	if err != nil {
		return err
	}
	p, err := pix.NewProject(c.Width, c.Height, pix.WithGridOptions(pix.WithBackground(bg)))
	if err != nil {
		return err
	}
	if err := p.SaveFile(c.Out); err != nil {
		return err
	}
	logger.Info("project created", "id", p.ID, "width", c.Width, "height", c.Height, "file", c.Out)
	return nil
}

type infoCmd struct {
	Project string `arg:"" type:"existingfile" help:"Project file to inspect."`
}

func (c *infoCmd) Run(logger *slog.Logger) error {
	p, err := pix.LoadProjectFile(c.Project)
	if err != nil {
		return err
	}
	g := p.Grid
	fmt.Printf("id:         %s\n", p.ID)
	fmt.Printf("size:       %dx%d\n", g.Width(), g.Height())
	fmt.Printf("background: %s\n", g.Background())
	fmt.Printf("palette:   ")
	for _, col := range p.Palette.Colors() {
		fmt.Printf(" %s", col)
	}
	fmt.Println()
	return nil
}

type applyCmd struct {
	Project  string `arg:"" type:"existingfile" help:"Project file to edit."`
	Tool     string `arg:"" enum:"brush,eraser,fill,stamp" help:"Tool to apply."`
	X        int    `arg:"" help:"Target cell x."`
	Y        int    `arg:"" help:"Target cell y."`
	Color    string `default:"#000000" help:"Active color (hex) for brush and fill."`
	Radius   int    `default:"0" help:"Footprint radius for brush and eraser."`
	Brush    string `type:"existingfile" help:"Image file for the stamp tool."`
	MaxBrush int    `default:"8" help:"Maximum stamp pattern size in cells."`
	Out      string `short:"o" help:"Output project file (defaults to in-place)."`
}

func (c *applyCmd) Run(logger *slog.Logger) error {
	p, err := pix.LoadProjectFile(c.Project)
	if err != nil {
		return err
	}

	var tool pix.Tool
	switch c.Tool {
	case "brush", "fill":
		col, err := pix.Hex(c.Color)
		if err != nil {
			return err
		}
		if c.Tool == "brush" {
			tool = pix.BrushTool(col, c.Radius)
		} else {
			tool = pix.FillTool(col)
		}
	case "eraser":
		tool = pix.EraserTool(c.Radius)
	case "stamp":
		if c.Brush == "" {
			return fmt.Errorf("stamp tool needs --brush")
		}
		pattern, err := pix.LoadBrushFile(c.Brush, c.MaxBrush, c.MaxBrush)
		if err != nil {
			return err
		}
		tool = pix.StampTool(pattern)
	}

	changed, err := pix.Apply(p.Grid, tool, c.X, c.Y)
	if err != nil {
		return err
	}

	out := c.Out
	if out == "" {
		out = c.Project
	}
	if err := p.SaveFile(out); err != nil {
		return err
	}
	logger.Info("tool applied", "tool", c.Tool, "x", c.X, "y", c.Y, "changed", len(changed), "file", out)
	return nil
}

type exportCmd struct {
	Project string `arg:"" type:"existingfile" help:"Project file to export."`
	Out     string `arg:"" help:"Output image file."`
	Format  string `enum:"png,pdf" default:"png" help:"Output format."`
	Scale   int    `default:"1" help:"Pixels (or points) per cell."`
}

func (c *exportCmd) Run(logger *slog.Logger) error {
	p, err := pix.LoadProjectFile(c.Project)
	if err != nil {
		return err
	}

	switch c.Format {
	case "pdf":
		err = p.Grid.SavePDF(c.Out, float64(c.Scale))
	default:
		var data []byte
		data, err = pix.EncodePNGScaled(p.Grid, c.Scale)
		if err == nil {
			err = os.WriteFile(c.Out, data, 0o644)
		}
	}
	if err != nil {
		return err
	}
	logger.Info("project exported", "format", c.Format, "scale", c.Scale, "file", c.Out)
	return nil
}

type brushCmd struct {
	Image     string `arg:"" type:"existingfile" help:"Image file to load."`
	MaxWidth  int    `default:"8" help:"Maximum pattern width in cells."`
	MaxHeight int    `default:"8" help:"Maximum pattern height in cells."`
}

func (c *brushCmd) Run(logger *slog.Logger) error {
	pattern, err := pix.LoadBrushFile(c.Image, c.MaxWidth, c.MaxHeight)
	if err != nil {
		return err
	}
	fmt.Printf("pattern: %dx%d\n", pattern.Width(), pattern.Height())
	for y := 0; y < pattern.Height(); y++ {
		for x := 0; x < pattern.Width(); x++ {
			fmt.Printf(" %s", pattern.ColorAt(x, y))
		}
		fmt.Println()
	}
	return nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("pixcanvas"),
		kong.Description("Pixel-art project tool: create, edit, and export PixelCanvas projects."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pix.SetLogger(logger)

	if err := ctx.Run(logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
