package wiki

import (
	"regexp"
	"strconv"

	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
)

var (
	// championHeader matches the opening of one champion entry up to and
	// including its skins table brace. The champion table carries only
	// scalar properties before the skins table, hence [^{}]*.
	championHeader = regexp.MustCompile(`\["([^"]+)"\]\s*=\s*\{[^{}]*\["skins"\]\s*=\s*\{`)

	// skinBlock matches one leaf skin entry inside a skins table.
	skinBlock = regexp.MustCompile(`\["([^"]+)"\]\s*=\s*\{([^}]+)\}`)

	costNumeric = regexp.MustCompile(`\["cost"\]\s*=\s*(\d+)`)
	costSpecial = regexp.MustCompile(`\["cost"\]\s*=\s*"Special"`)
)

// ParseLua extracts skin records from the SkinData module source. Each
// skin's display name is the wiki convention "<Skin> <Champion>", except
// the "Original" entry, which is the champion's base appearance and keeps
// the champion name alone. Entries without any cost are skipped; entries
// costing "Special" are promotional and carry the Special tier with no
// price.
func ParseLua(lua string, table catalog.PriceTable) ([]catalog.SkinRecord, error) {
	headers := championHeader.FindAllStringSubmatchIndex(lua, -1)
	if len(headers) == 0 {
		return nil, &errors.ParseError{Source: "wiki", Message: "no champion entries found in module source"}
	}

	var skins []catalog.SkinRecord
	for i, loc := range headers {
		champion := lua[loc[2]:loc[3]]

		// The skins table body runs from this header to the next
		// champion's header (or end of source). Trailing close braces in
		// the slice are harmless: skin entries are matched as leaf tables.
		start := loc[1]
		end := len(lua)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		body := lua[start:end]

		for _, entry := range skinBlock.FindAllStringSubmatch(body, -1) {
			skinName, props := entry[1], entry[2]

			cost, special, ok := parseCost(props)
			if !ok {
				continue
			}

			rec := catalog.SkinRecord{
				ChampionName: champion,
				PriceRP:      cost,
			}

			switch {
			case skinName == "Original":
				rec.SkinName = champion
				rec.IsBase = true
				rec.Tier = catalog.TierDefault
				rec.PriceRP = 0
			case special:
				rec.SkinName = skinName + " " + champion
				rec.Tier = catalog.TierSpecial
			default:
				rec.SkinName = skinName + " " + champion
				rec.Tier, _ = table.Classify(cost)
			}

			skins = append(skins, rec)
		}
	}
	return skins, nil
}

// parseCost reads a skin's cost property. The third return is false when
// the entry has no cost at all and should be skipped.
func parseCost(props string) (cost int, special bool, ok bool) {
	if m := costNumeric.FindStringSubmatch(props); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false, false
		}
		return n, false, true
	}
	if costSpecial.MatchString(props) {
		return 0, true, true
	}
	return 0, false, false
}
