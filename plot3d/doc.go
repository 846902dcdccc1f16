// Package plot3d renders a static 3D plot of whole input files.
//
// It is the batch companion of the pointview viewer. Every input is read to
// the end, each line that holds exactly three finite numbers becomes a point
// of that input's Series, and all series are drawn once into shared 3D axes
// spanning [-Limit, Limit] on every axis.
//
//	opts := plot3d.DefaultOptions()
//	opts.Points = true
//	opts.Normalize()
//
//	series, err := plot3d.LoadAll(opts.Inputs, os.Stdin)
//	if err != nil {
//	    return err // *plot3d.InputError for an unreadable file
//	}
//	fig := plot3d.NewFigure(opts, series)
//	err = plot3d.ExportAll(fig, []string{"out.png"}, opts.DPI)
//
// Figures are drawn with gg on the CPU. Export picks the encoder from the
// file extension; Show presents the figure in a window backend and redraws
// it on resize.
package plot3d
