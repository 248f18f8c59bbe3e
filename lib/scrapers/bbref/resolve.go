package bbref

import "strings"

// resolveOriginDestination picks the team codes an asset moved between.
//
// Origin: the last "from" marker before the asset, falling back to the
// first marker when none precedes it. Destination: scanning "to" markers
// backwards, the first one after the resolved origin, falling back to the
// last marker in document order. Either side defaults to FreeAgent when no
// marker of that kind exists.
//
// When both sides resolved from markers, a statement phrased as a sale
// ("Team B sold X to Team A") or an asset appearing after its destination
// marker means the marker order is reversed relative to the actual flow,
// so origin and destination swap.
func resolveOriginDestination(origins, destinations []teamMarker, asset assetNode) (string, string) {
	from, hasFrom := resolveFrom(origins, asset)
	to, hasTo := resolveTo(destinations, from, hasFrom)

	origin := FreeAgent
	if hasFrom {
		origin = from.team
	}
	destination := FreeAgent
	if hasTo {
		destination = to.team
	}

	if hasFrom && hasTo {
		if strings.Contains(asset.text, " sold ") || asset.pos > to.pos {
			origin, destination = destination, origin
		}
	}

	return origin, destination
}

func resolveFrom(origins []teamMarker, asset assetNode) (teamMarker, bool) {
	if len(origins) == 0 {
		return teamMarker{}, false
	}
	for i := len(origins) - 1; i >= 0; i-- {
		if origins[i].pos < asset.pos {
			return origins[i], true
		}
	}
	return origins[0], true
}

func resolveTo(destinations []teamMarker, from teamMarker, hasFrom bool) (teamMarker, bool) {
	if len(destinations) == 0 {
		return teamMarker{}, false
	}
	last := destinations[len(destinations)-1]
	if len(destinations) == 1 || !hasFrom {
		return last, true
	}
	for i := len(destinations) - 1; i >= 0; i-- {
		if destinations[i].pos > from.pos {
			return destinations[i], true
		}
	}
	return last, true
}
