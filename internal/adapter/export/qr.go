package export

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const qrLabelSize = 256

// AssetLabelPNG renders the printable QR label for an asset. The code encodes
// the asset detail URL, so a scan resolves straight to the asset page.
func AssetLabelPNG(baseURL, assetID string) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/assets/%s", strings.TrimRight(baseURL, "/"), assetID)
	return qrcode.Encode(url, qrcode.Medium, qrLabelSize)
}
