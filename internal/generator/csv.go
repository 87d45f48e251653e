package generator

import (
	"encoding/csv"
	"strconv"
	"time"

	"github.com/riftworks/skinforge/internal/tabular"
	"github.com/riftworks/skinforge/pkg/errors"
)

const dateLayout = "2006-01-02"

// WritePlayers writes the dim_player table.
func WritePlayers(path string, players []PlayerRecord, overwrite bool) error {
	f, err := tabular.Create(path, overwrite)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"player_id", "region", "account_created", "segment"}); err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	for _, p := range players {
		row := []string{
			strconv.Itoa(p.PlayerID),
			p.Region,
			p.AccountCreated.Format(dateLayout),
			string(p.Segment),
		}
		if err := w.Write(row); err != nil {
			return &errors.IOError{Op: "write", Path: path, Err: err}
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSales writes the fact_sales table. Injected nulls become empty
// cells so downstream cleaning sees the same shapes a raw export would
// have; the trailing error_type column labels each defect for auditing.
func WriteSales(path string, txs []Transaction, overwrite bool) error {
	f, err := tabular.Create(path, overwrite)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"transaction_id", "player_id", "skin_id", "purchase_date", "price_rp", "quantity", "error_type"}); err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	for _, t := range txs {
		row := []string{
			strconv.Itoa(t.TransactionID),
			optInt(t.PlayerID),
			optInt(t.SkinID),
			formatDate(t.PurchaseDate),
			optInt(t.PriceRP),
			strconv.Itoa(t.Quantity),
			string(t.ErrorType),
		}
		if err := w.Write(row); err != nil {
			return &errors.IOError{Op: "write", Path: path, Err: err}
		}
	}
	w.Flush()
	return w.Error()
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
