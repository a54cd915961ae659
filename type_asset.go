package transactions

import "fmt"

// Asset is the class of instrument a source exports. It only drives
// presentation details such as the output sheet name.
type Asset int

const (
	// MutualFund covers registrar exports of mutual fund folios.
	MutualFund Asset = iota
	// Stock covers broker exports of listed equity.
	Stock
)

func (a Asset) String() string {
	switch a {
	case MutualFund:
		return "mf"
	case Stock:
		return "stock"
	default:
		return "unknown"
	}
}

// SheetName returns the name of the output worksheet for this asset class.
func (a Asset) SheetName() string {
	switch a {
	case MutualFund:
		return "MF Data"
	case Stock:
		return "Stock Data"
	default:
		return "Sheet1"
	}
}

// ParseAsset parses a string into an Asset.
func ParseAsset(s string) (Asset, error) {
	switch s {
	case "mf", "mutual-fund":
		return MutualFund, nil
	case "stock", "equity":
		return Stock, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}
