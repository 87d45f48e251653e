// Package tabular reads and writes the CSV snapshots that hand data
// between pipeline stages. Input schemas drifted across the source
// exports (champion vs champion_name, optional columns), so readers
// resolve headers through a configurable column map with built-in
// aliases instead of hard-coding one layout.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
)

// ColumnMap names the CSV headers for each logical skin field. Zero
// values fall back to the canonical header and its known aliases.
type ColumnMap struct {
	ChampionID   string `yaml:"champion_id,omitempty"`
	ChampionName string `yaml:"champion_name,omitempty"`
	SkinName     string `yaml:"skin_name,omitempty"`
	SkinNum      string `yaml:"skin_num,omitempty"`
	Price        string `yaml:"price,omitempty"`
	Tier         string `yaml:"tier,omitempty"`
	IsBase       string `yaml:"is_base,omitempty"`
}

// aliases maps canonical headers to the spellings seen across exports.
var aliases = map[string][]string{
	"champion_id":   {"champion_id", "championid"},
	"champion_name": {"champion_name", "champion"},
	"skin_name":     {"skin_name", "skin", "name"},
	"skin_num":      {"skin_num", "skin_number", "num"},
	"price_rp":      {"price_rp", "price", "cost"},
	"rarity":        {"rarity", "tier"},
	"is_base":       {"is_base", "base"},
}

// column resolves the index of a logical column in the header row.
// A configured name is matched exactly; otherwise aliases apply.
func column(header []string, configured, canonical string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if configured != "" {
			if h == strings.ToLower(configured) {
				return i
			}
			continue
		}
		for _, a := range aliases[canonical] {
			if h == a {
				return i
			}
		}
	}
	return -1
}

// ReadSkins loads a skin catalog snapshot. A missing file is fatal to the
// caller and reported as a not-found error before any output is written.
func ReadSkins(path string, cols ColumnMap) ([]catalog.SkinRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("input catalog", path)
		}
		return nil, &errors.IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &errors.IOError{Op: "read", Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	idxChampionID := column(header, cols.ChampionID, "champion_id")
	idxChampionName := column(header, cols.ChampionName, "champion_name")
	idxSkinName := column(header, cols.SkinName, "skin_name")
	idxSkinNum := column(header, cols.SkinNum, "skin_num")
	idxPrice := column(header, cols.Price, "price_rp")
	idxTier := column(header, cols.Tier, "rarity")
	idxIsBase := column(header, cols.IsBase, "is_base")

	if idxSkinName < 0 {
		return nil, &errors.ParseError{Source: path, Message: "no skin name column found"}
	}

	skins := make([]catalog.SkinRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec := catalog.SkinRecord{SkinName: cell(row, idxSkinName)}
		rec.ChampionID = cell(row, idxChampionID)
		rec.ChampionName = cell(row, idxChampionName)
		if rec.ChampionName == "" {
			rec.ChampionName = rec.ChampionID
		}

		if idxSkinNum >= 0 {
			num, err := parseInt(cell(row, idxSkinNum))
			if err != nil {
				return nil, &errors.ParseError{Source: path, Line: n + 2, Message: fmt.Sprintf("bad skin number %q", cell(row, idxSkinNum)), Err: err}
			}
			rec.SkinNum = num
			rec.IsBase = num == 0
		}

		if idxPrice >= 0 && cell(row, idxPrice) != "" {
			price, err := parseInt(cell(row, idxPrice))
			if err != nil {
				return nil, &errors.ParseError{Source: path, Line: n + 2, Message: fmt.Sprintf("bad price %q", cell(row, idxPrice)), Err: err}
			}
			rec.PriceRP = price
		}

		if idxTier >= 0 {
			rec.Tier = catalog.Tier(cell(row, idxTier))
		}
		if idxIsBase >= 0 {
			rec.IsBase = parseBool(cell(row, idxIsBase))
		}
		if rec.SkinName == "default" {
			rec.IsBase = true
		}

		skins = append(skins, rec)
	}
	return skins, nil
}

// WriteSkins writes a pre-reconciliation snapshot in the canonical schema.
func WriteSkins(path string, skins []catalog.SkinRecord, overwrite bool) error {
	f, err := Create(path, overwrite)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"champion_id", "champion_name", "skin_num", "skin_name", "rarity", "price_rp", "is_base", "skin_name_norm"}); err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	for _, s := range skins {
		row := []string{
			s.ChampionID,
			s.ChampionName,
			strconv.Itoa(s.SkinNum),
			s.SkinName,
			string(s.Tier),
			strconv.Itoa(s.PriceRP),
			strconv.FormatBool(s.IsBase),
			s.JoinKey(),
		}
		if err := w.Write(row); err != nil {
			return &errors.IOError{Op: "write", Path: path, Err: err}
		}
	}
	w.Flush()
	return w.Error()
}

// WriteReconciled writes the final reconciled catalog. The normalized key
// is retained as a trailing column for downstream debugging.
func WriteReconciled(path string, skins []catalog.ReconciledSkin, overwrite bool) error {
	f, err := Create(path, overwrite)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"skin_id", "champion_name", "skin_name", "rarity", "price_rp", "champion_id", "skin_num", "skin_name_norm"}); err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	for _, s := range skins {
		row := []string{
			strconv.Itoa(s.SkinID),
			s.ChampionName,
			s.SkinName,
			string(s.Tier),
			strconv.Itoa(s.PriceRP),
			s.ChampionID,
			strconv.Itoa(s.SkinNum),
			s.JoinKey(),
		}
		if err := w.Write(row); err != nil {
			return &errors.IOError{Op: "write", Path: path, Err: err}
		}
	}
	w.Flush()
	return w.Error()
}

// ReadReconciled loads a reconciled catalog written by WriteReconciled.
func ReadReconciled(path string) ([]catalog.ReconciledSkin, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("reconciled catalog", path)
		}
		return nil, &errors.IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &errors.IOError{Op: "read", Path: path, Err: err}
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	idxID := column(header, "skin_id", "")
	idxChampionID := column(header, "", "champion_id")
	idxChampionName := column(header, "", "champion_name")
	idxSkinName := column(header, "", "skin_name")
	idxSkinNum := column(header, "", "skin_num")
	idxPrice := column(header, "", "price_rp")
	idxTier := column(header, "", "rarity")
	if idxID < 0 || idxSkinName < 0 || idxPrice < 0 {
		return nil, &errors.ParseError{Source: path, Message: "missing skin_id, skin_name, or price column"}
	}

	skins := make([]catalog.ReconciledSkin, 0, len(rows)-1)
	for n, row := range rows[1:] {
		id, err := parseInt(cell(row, idxID))
		if err != nil {
			return nil, &errors.ParseError{Source: path, Line: n + 2, Message: fmt.Sprintf("bad skin id %q", cell(row, idxID)), Err: err}
		}
		price, err := parseInt(cell(row, idxPrice))
		if err != nil {
			return nil, &errors.ParseError{Source: path, Line: n + 2, Message: fmt.Sprintf("bad price %q", cell(row, idxPrice)), Err: err}
		}
		num := 0
		if idxSkinNum >= 0 && cell(row, idxSkinNum) != "" {
			if num, err = parseInt(cell(row, idxSkinNum)); err != nil {
				return nil, &errors.ParseError{Source: path, Line: n + 2, Message: fmt.Sprintf("bad skin number %q", cell(row, idxSkinNum)), Err: err}
			}
		}

		tier := catalog.Tier(cell(row, idxTier))
		skins = append(skins, catalog.ReconciledSkin{
			SkinID: id,
			SkinRecord: catalog.SkinRecord{
				ChampionID:   cell(row, idxChampionID),
				ChampionName: cell(row, idxChampionName),
				SkinName:     cell(row, idxSkinName),
				SkinNum:      num,
				PriceRP:      price,
				Tier:         tier,
				IsBase:       tier == catalog.TierDefault,
			},
		})
	}
	return skins, nil
}

// Create opens path for writing. An existing file is only replaced when
// overwrite is set; the pipeline never prompts interactively.
func Create(path string, overwrite bool) (*os.File, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("output file %s: %w (pass overwrite to replace it)", path, errors.ErrAlreadyExists)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, &errors.IOError{Op: "write", Path: path, Err: err}
	}
	return f, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseInt accepts plain integers and float-formatted integers, which
// some upstream exports produce for nullable numeric columns.
func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(fl), nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "t", "1", "yes":
		return true
	}
	return false
}
