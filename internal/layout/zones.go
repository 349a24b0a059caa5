package layout

import "github.com/joseph-ayodele/invoice-parser/constants"

// ZoneOf classifies a rectangle into one of the four page zones by its
// center alone. Computed on demand; zones are never stored.
func ZoneOf(r Rect) constants.Zone {
	cy := r.CenterY()
	switch {
	case cy < constants.HeaderBandMaxY:
		if r.CenterX() < constants.HeaderSplitX {
			return constants.ZoneHeaderLeft
		}
		return constants.ZoneHeaderRight
	case cy > constants.FooterBandMinY:
		return constants.ZoneFooter
	default:
		return constants.ZoneBody
	}
}
