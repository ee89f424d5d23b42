//Package coordplot renders the distance data produced by the analysis
//functions: bond-length histograms and radial-distribution views. It is a
//presentation layer only; nothing here feeds back into the analyses.
package coordplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	coord "github.com/molsurf/gocoord"
)

//DistanceHistogram plots a histogram of the given distances with nbins
//bins and saves it to fname. The format follows the file extension
//(.png, .pdf, .svg...).
func DistanceHistogram(dists []float64, nbins int, title, fname string) error {
	if len(dists) == 0 {
		return fmt.Errorf("DistanceHistogram: no distances to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "d / A"
	p.Y.Label.Text = "count"
	h, err := plotter.NewHist(plotter.Values(dists), nbins)
	if err != nil {
		return fmt.Errorf("DistanceHistogram: %w", err)
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 4*vg.Inch, fname)
}

//RDF plots the sorted pair-distance spectrum of a structure as a
//histogram between rmin and rmax and saves it to fname. include is as in
//coord.SortedDistances: nil means all atoms.
func RDF(S *coord.Structure, include []int, rmin, rmax float64, nbins int, fname string) error {
	all := coord.SortedDistances(S, include)
	window := make([]float64, 0, len(all))
	for _, d := range all {
		if d >= rmin && d <= rmax {
			window = append(window, d)
		}
	}
	if len(window) == 0 {
		return fmt.Errorf("RDF: no distances between %v and %v", rmin, rmax)
	}
	return DistanceHistogram(window, nbins, "radial distribution", fname)
}

//BondSetHistogram plots the distance distribution of one classified bond
//set, titled with its element-pair label.
func BondSetHistogram(bs *coord.BondSet, nbins int, fname string) error {
	if bs == nil || len(bs.Dists) == 0 {
		return fmt.Errorf("BondSetHistogram: empty bond set")
	}
	return DistanceHistogram(bs.Dists, nbins, bs.Label, fname)
}
