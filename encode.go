package transactions

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the records interchange format.
// It should remain human readable, single file and easy to diff or merge.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for Record. Open
// records omit the sell leg entirely instead of writing empty fields.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", r.Name)
	w.Append("side", r.Side)
	w.Append("quantity", r.Quantity)
	w.Append("buyDate", r.BuyDate)
	w.Append("buyPrice", r.BuyPrice)
	if r.Side == Sell {
		w.Append("sellDate", r.SellDate)
		w.Append("sellPrice", r.SellPrice)
	}
	return w.MarshalJSON()
}

// EncodeRecords writes records to 'w' in the interchange format: a JSONL
// stream, one JSON object per record, decimals written as plain numbers.
func EncodeRecords(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("cannot encode record for %q: %w", r.Name, err)
		}
		if _, err := bw.Write(data); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeRecords reads records back from a JSONL stream written by
// EncodeRecords. Empty lines are skipped.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("cannot parse record line %q: %w", string(line), err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
