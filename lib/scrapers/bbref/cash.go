package bbref

import "strings"

const cashConsiderations = "Cash Considerations"

// parseCashConsiderations emits a single canonical cash token for a text
// asset node phrased as a cash transfer or a sale. "Cornelius Cash" is a
// player, not money.
//
// Sale phrasing variants ("was sold", "was later sold", conveyance
// caveats) all collapse into the same plain token for now.
func parseCashConsiderations(asset assetNode) []string {
	if strings.Contains(asset.text, " cash") && !strings.Contains(asset.text, "cornelius") {
		return []string{cashConsiderations}
	}
	if strings.Contains(asset.text, " sold ") {
		return []string{cashConsiderations}
	}
	return nil
}
