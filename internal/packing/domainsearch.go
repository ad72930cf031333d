package packing

import (
	"context"
	"sort"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// domainSearch partitions the container length into fixed sub-regions
// (domains) and keeps an independent skyline-style anchor set per domain.
// Candidate evaluation per unit is bounded by one domain's anchors instead
// of the whole container's, and filling the emptiest domain first spreads
// cargo along the container length.
type domainSearch struct{}

func (domainSearch) Name() string { return AlgorithmDomainSearch }

// searchDomains is the number of length-wise partitions.
const searchDomains = 4

type searchDomain struct {
	index      int
	xMin, xMax float64
	anchors    *anchorList
	usedVolume float64
}

func (a domainSearch) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
	state := newPackState(c)
	var unfitted []model.ItemUnit

	domains := make([]*searchDomain, searchDomains)
	step := c.Length / searchDomains
	for i := range domains {
		d := &searchDomain{index: i, xMin: float64(i) * step, xMax: float64(i+1) * step, anchors: newAnchorList()}
		d.anchors.pts[0] = point{d.xMin, 0, 0}
		domains[i] = d
	}

	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return model.PackingResult{}, err
		}
		if !state.canCarry(u) {
			unfitted = append(unfitted, u)
			continue
		}

		// Emptiest domain first; index breaks ties deterministically.
		order := make([]*searchDomain, len(domains))
		copy(order, domains)
		sort.Slice(order, func(i, j int) bool {
			if order[i].usedVolume != order[j].usedVolume {
				return order[i].usedVolume < order[j].usedVolume
			}
			return order[i].index < order[j].index
		})

		placed := false
		for _, d := range order {
			p, o, ok := d.findPlacement(state, u)
			if !ok {
				continue
			}
			b := state.place(u, o, p)
			d.anchors.consume(p, b)
			d.usedVolume += b.volume()
			placed = true
			break
		}
		if !placed {
			unfitted = append(unfitted, u)
		}
	}

	return state.result(a.Name(), unfitted), nil
}

// findPlacement runs a bottom-left scan over the domain's anchors. Only
// anchors whose origin lies in the domain's x-range are considered, but the
// placed box may extend past xMax: domains bound the candidate scan, not the
// placement footprint. Container bounds are enforced by state.fits.
func (d *searchDomain) findPlacement(state *packState, u model.ItemUnit) (point, model.Orientation, bool) {
	for _, p := range d.anchors.sortedPoints() {
		if p.x < d.xMin-eps || p.x > d.xMax-eps {
			continue
		}
		for _, o := range model.Orientations {
			b := orientedBox(u, o, p)
			if !state.fits(b) {
				continue
			}
			return p, o, true
		}
	}
	return point{}, 0, false
}
