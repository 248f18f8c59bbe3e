package bbref

import (
	"fmt"
	"strings"
)

// UnknownAssetTypeError reports a hyperlink asset whose target path
// matches no known category.
type UnknownAssetTypeError struct {
	Target string
}

func (e *UnknownAssetTypeError) Error() string {
	return fmt.Sprintf("unexpected asset link target: %s", e.Target)
}

// classifyAssetType maps a hyperlink's target path to an asset category.
// Text assets (draft picks and cash) come back as Other: nothing assigns
// AssetDraftPick or AssetCash today, and downstream consumers expect that
// distribution.
func classifyAssetType(asset assetNode) (AssetType, error) {
	if !asset.isLink {
		return AssetOther, nil
	}

	target := strings.ToLower(asset.link)
	switch {
	case strings.Contains(target, "/players/"):
		return AssetPlayer, nil
	case strings.Contains(target, "/coaches/"):
		return AssetCoach, nil
	case strings.Contains(target, "/executives/"):
		return AssetExecutive, nil
	default:
		return "", &UnknownAssetTypeError{Target: asset.link}
	}
}
