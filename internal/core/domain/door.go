package domain

import (
	"encoding/json"
	"fmt"
)

// DoorRecord is one row of an extracted door schedule. Pointer fields
// are nil where the source documents carry no value for them.
type DoorRecord struct {
	Mark       string   `json:"mark"`
	Location   string   `json:"location"`
	WidthMM    *float64 `json:"width_mm"`
	HeightMM   *float64 `json:"height_mm"`
	FireRating *string  `json:"fire_rating"`
	Material   *string  `json:"material"`
}

// doorRecordKeys are the fields a valid record must carry.
var doorRecordKeys = []string{"mark", "location", "width_mm", "height_mm", "fire_rating", "material"}

// DecodeDoorRecord strictly decodes a single JSON object into a
// DoorRecord. All six keys must be present: mark and location must be
// non-null strings, width_mm and height_mm numbers or null, fire_rating
// and material strings or null. Anything else fails the whole element,
// so callers drop it rather than keep a partial record.
func DecodeDoorRecord(raw json.RawMessage) (DoorRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return DoorRecord{}, fmt.Errorf("door record is not an object: %w", err)
	}

	for _, key := range doorRecordKeys {
		if _, ok := fields[key]; !ok {
			return DoorRecord{}, fmt.Errorf("door record missing %q: %w", key, ErrInvalidInput)
		}
	}

	// json.Unmarshal leaves string targets untouched for literal null,
	// so the two mandatory string fields need an explicit null check.
	for _, key := range []string{"mark", "location"} {
		if string(fields[key]) == "null" {
			return DoorRecord{}, fmt.Errorf("door record field %s may not be null: %w", key, ErrInvalidInput)
		}
	}

	var rec DoorRecord
	for key, target := range map[string]any{
		"mark":        &rec.Mark,
		"location":    &rec.Location,
		"width_mm":    &rec.WidthMM,
		"height_mm":   &rec.HeightMM,
		"fire_rating": &rec.FireRating,
		"material":    &rec.Material,
	} {
		if err := json.Unmarshal(fields[key], target); err != nil {
			return DoorRecord{}, fmt.Errorf("door record field %s: %w", key, err)
		}
	}

	return rec, nil
}

// DecodeDoorRecords decodes a JSON array into door records, dropping
// every element that fails validation. A failure to parse the array
// itself returns an error; element-level failures never do.
func DecodeDoorRecords(raw []byte) (records []DoorRecord, dropped []error, err error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, nil, fmt.Errorf("door schedule is not a JSON array: %w", err)
	}

	records = make([]DoorRecord, 0, len(elements))
	for i, el := range elements {
		rec, decodeErr := DecodeDoorRecord(el)
		if decodeErr != nil {
			dropped = append(dropped, fmt.Errorf("element %d: %w", i, decodeErr))
			continue
		}
		records = append(records, rec)
	}

	return records, dropped, nil
}
