package server

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/oapi-codegen/nullable"
	"github.com/oapi-codegen/runtime/types"

	"github.com/calbec/medialog/pkg/manager"
	"github.com/calbec/medialog/pkg/media"
)

// irregularColumns lists API field names whose storage column isn't what the
// mechanical conversion would produce, or that contain initialisms.
var irregularColumns = map[string]string{
	"curSeasonIndex": "cur_season_index",
	"curEpisode":     "cur_episode",
	"dlcIndex":       "dlc_index",
	"tmdbId":         "tmdb_id",
	"igdbId":         "igdb_id",
	"imdbId":         "imdb_id",
	"coverIds":       "cover_ids",
	"coverUrl":       "cover_url",
}

// ToColumn translates a camelCase API field to its snake_case storage column:
// the irregular table first, a mechanical conversion otherwise.
func ToColumn(field string) string {
	if column, ok := irregularColumns[field]; ok {
		return column
	}

	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// buildItemPatch parses a PATCH body against the profile's key allow-list.
// Any key outside the list rejects the whole request.
func buildItemPatch(profile manager.Profile, body []byte) (manager.ItemPatch, error) {
	var patch manager.ItemPatch

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return patch, fmt.Errorf("invalid request body")
	}
	if len(fields) == 0 {
		return patch, fmt.Errorf("empty patch")
	}

	allowed := make(map[string]bool, len(profile.PatchKeys))
	for _, key := range profile.PatchKeys {
		allowed[ToColumn(key)] = true
	}

	for field, raw := range fields {
		column := ToColumn(field)
		if !allowed[column] {
			return manager.ItemPatch{}, fmt.Errorf("unknown field %q", field)
		}

		var err error
		switch column {
		case "status":
			err = parseStatus(&patch, profile.Vocabulary, raw)
		case "score":
			err = parseInt32(&patch.Score, raw, media.ValidateScore)
		case "note":
			err = parseNote(&patch, raw)
		case "date_completed":
			err = parseDateCompleted(&patch, raw)
		case "cur_season_index":
			err = parseInt32(&patch.CurSeasonIndex, raw, requireMin(0, field))
		case "cur_episode":
			err = parseInt32(&patch.CurEpisode, raw, requireMin(1, field))
		case "dlc_index":
			err = parseInt32(&patch.DLCIndex, raw, requireMin(0, field))
		case "cover_index":
			err = parseInt32(&patch.CoverIndex, raw, requireMin(0, field))
		case "series":
			err = parseString(&patch.Series, raw, field)
		case "prequel":
			err = parseString(&patch.Prequel, raw, field)
		case "sequel":
			err = parseString(&patch.Sequel, raw, field)
		default:
			err = fmt.Errorf("unknown field %q", field)
		}
		if err != nil {
			return manager.ItemPatch{}, err
		}
	}

	return patch, nil
}

func parseStatus(patch *manager.ItemPatch, vocabulary media.Vocabulary, raw json.RawMessage) error {
	var value nullable.Nullable[string]
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("status must be a string")
	}
	if value.IsNull() {
		return fmt.Errorf("status cannot be null")
	}

	label := value.MustGet()
	if !vocabulary.Valid(label) {
		return fmt.Errorf("unknown status %q", label)
	}
	patch.StatusLabel = &label
	return nil
}

func parseNote(patch *manager.ItemPatch, raw json.RawMessage) error {
	var value nullable.Nullable[string]
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("note must be a string")
	}
	if value.IsNull() {
		empty := ""
		patch.Note = &empty
		return nil
	}

	note := value.MustGet()
	if err := media.ValidateNote(note); err != nil {
		return err
	}
	patch.Note = &note
	return nil
}

// parseDateCompleted distinguishes an explicit null, which clears the stored
// date, from a yyyy-mm-dd value.
func parseDateCompleted(patch *manager.ItemPatch, raw json.RawMessage) error {
	var value nullable.Nullable[types.Date]
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("dateCompleted must be a yyyy-mm-dd date")
	}
	if value.IsNull() {
		patch.ClearDateCompleted = true
		return nil
	}

	date := value.MustGet()
	completed := date.Time.UTC()
	patch.DateCompleted = &completed
	return nil
}

func parseInt32(target **int32, raw json.RawMessage, check func(int32) error) error {
	var value nullable.Nullable[int32]
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("expected an integer")
	}
	if value.IsNull() {
		return fmt.Errorf("value cannot be null")
	}

	v := value.MustGet()
	if check != nil {
		if err := check(v); err != nil {
			return err
		}
	}
	*target = &v
	return nil
}

func parseString(target **string, raw json.RawMessage, field string) error {
	var value nullable.Nullable[string]
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("%s must be a string", field)
	}
	if value.IsNull() {
		empty := ""
		*target = &empty
		return nil
	}

	v := value.MustGet()
	*target = &v
	return nil
}

func requireMin(min int32, field string) func(int32) error {
	return func(v int32) error {
		if v < min {
			return fmt.Errorf("%s must be at least %d", field, min)
		}
		return nil
	}
}
