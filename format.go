package transactions

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Format describes how to read one source's export sheet: which rows to
// skip, which column holds each field, and how dates are written. Sources
// differing only in layout are configuration, never code.
//
// Column indices are zero-based, matching the raw cell rows of the sheet.
type Format struct {
	Name     string `yaml:"name"`
	FirstRow int    `yaml:"firstRow"` // number of leading header rows to skip
	NameCol  int    `yaml:"nameCol"`
	DateCol  int    `yaml:"dateCol"`
	QtyCol   int    `yaml:"qtyCol"`
	PriceCol int    `yaml:"priceCol"`
	// SideCol is the column of the explicit buy/sell field, or negative when
	// the source has no such column and the side is derived from the
	// quantity sign.
	SideCol    int    `yaml:"sideCol"`
	DateLayout string `yaml:"dateLayout"` // Go time layout of the date column
	// Aggregate enables the pre-pass merging consecutive same side/date/price
	// rows into one event (same-day partial fills).
	Aggregate bool `yaml:"aggregate"`
	// Compress enables merging of adjacent output records with identical legs.
	Compress     bool   `yaml:"compress"`
	Asset        Asset  `yaml:"asset"`
	Currency     string `yaml:"currency"`
	OutputPrefix string `yaml:"outputPrefix"`
}

// Built-in formats, with the column layouts of the supported sources.
var (
	// Cams is the CAMS mutual fund registrar transaction export.
	Cams = Format{
		Name:         "cams",
		FirstRow:     1,
		NameCol:      5,
		DateCol:      7,
		QtyCol:       11,
		PriceCol:     12,
		SideCol:      -1,
		DateLayout:   "02-Jan-2006",
		Asset:        MutualFund,
		Currency:     "INR",
		OutputPrefix: "cams",
	}
	// Kfintech is the KFintech mutual fund registrar transaction export.
	Kfintech = Format{
		Name:         "kfintech",
		FirstRow:     1,
		NameCol:      4,
		DateCol:      5,
		QtyCol:       8,
		PriceCol:     9,
		SideCol:      -1,
		DateLayout:   "02-Jan-2006",
		Asset:        MutualFund,
		Currency:     "INR",
		OutputPrefix: "kfintech",
	}
	// Zerodha is the Zerodha Coin tradebook export. Its raw sheet records
	// one order as several same-day executions, hence aggregation, and an
	// explicit buy/sell column instead of signed quantities.
	Zerodha = Format{
		Name:         "zerodha",
		FirstRow:     15,
		NameCol:      1,
		DateCol:      3,
		QtyCol:       9,
		PriceCol:     10,
		SideCol:      7,
		DateLayout:   "2006-01-02",
		Aggregate:    true,
		Compress:     true,
		Asset:        MutualFund,
		Currency:     "INR",
		OutputPrefix: "zerodha",
	}
)

// BuiltinFormats returns the formats known without any configuration file.
func BuiltinFormats() []Format {
	return []Format{Cams, Kfintech, Zerodha}
}

// LookupFormat finds a format by name among the built-ins and any extra
// formats loaded from configuration. Extras win over built-ins so a
// configuration file can override a built-in layout.
func LookupFormat(name string, extras []Format) (Format, error) {
	for _, f := range extras {
		if f.Name == name {
			return f, nil
		}
	}
	for _, f := range BuiltinFormats() {
		if f.Name == name {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("unknown source format: %q", name)
}

// Sided reports whether the source carries an explicit buy/sell column.
func (f Format) Sided() bool { return f.SideCol >= 0 }

// DefaultOutput returns the output file name used when none is given.
func (f Format) DefaultOutput() string {
	return fmt.Sprintf("%s_output_%s.xlsx", f.OutputPrefix, time.Now().Format("150405"))
}

// Validate checks that the format is usable.
func (f Format) Validate() error {
	if f.Name == "" {
		return errors.New("format name is required")
	}
	if f.FirstRow < 0 {
		return errors.New("firstRow must not be negative")
	}
	if f.NameCol < 0 || f.DateCol < 0 || f.QtyCol < 0 || f.PriceCol < 0 {
		return errors.New("column indices must not be negative")
	}
	if f.DateLayout == "" {
		return errors.New("dateLayout is required")
	}
	if f.Currency == "" {
		return errors.New("currency is required")
	}
	if f.OutputPrefix == "" {
		return errors.New("outputPrefix is required")
	}
	return nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Asset.
func (a *Asset) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseAsset(str)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface for Asset.
func (a Asset) MarshalYAML() (interface{}, error) { return a.String(), nil }

// LoadFormats reads extra source formats from a YAML document of the shape:
//
//	formats:
//	  - name: mybroker
//	    firstRow: 1
//	    nameCol: 0
//	    dateCol: 1
//	    qtyCol: 2
//	    priceCol: 3
//	    dateLayout: "2006-01-02"
//	    asset: stock
//	    outputPrefix: mybroker
//
// Omitted fields default to a sign-derived side column and INR amounts.
func LoadFormats(r io.Reader) ([]Format, error) {
	var doc struct {
		Formats []yaml.Node `yaml:"formats"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot parse formats file: %w", err)
	}

	var out []Format
	for i := range doc.Formats {
		f := Format{SideCol: -1, Currency: "INR", Asset: MutualFund}
		if err := doc.Formats[i].Decode(&f); err != nil {
			return nil, fmt.Errorf("cannot parse format entry %d: %w", i, err)
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("invalid format %q: %w", f.Name, err)
		}
		out = append(out, f)
	}
	return out, nil
}
