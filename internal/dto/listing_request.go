package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ListingID accepts both 2 and "2" on the wire; the edit page posts the
// route parameter as a string.
type ListingID int64

// UnmarshalJSON decodes a JSON number or a numeric string.
func (id *ListingID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid listing id %s", data)
	}
	*id = ListingID(n)
	return nil
}

// StatusRequest is the POST /api/listings body.
type StatusRequest struct {
	ID     ListingID `json:"id"`
	Action string    `json:"action"`
}

// RenameRequest is the PUT /api/listings body.
type RenameRequest struct {
	ID  ListingID `json:"id"`
	Car string    `json:"car"`
}
