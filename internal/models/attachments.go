// Copyright (C) 2025  The moemail authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AttachmentRef describes an attachment after its bytes have been committed
// to the blob store. The key is opaque to everything downstream of the store.
type AttachmentRef struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Key  string `json:"key"`
}

// AttachmentList is an ordered list of attachment references. It is persisted
// as a json encoded text column, so that the "messages" table does not need a
// separate attachments table.
type AttachmentList []AttachmentRef

// Value implements the driver.Valuer interface. A nil list encodes to "[]",
// never to "null".
func (l AttachmentList) Value() (driver.Value, error) {
	if l == nil {
		l = AttachmentList{}
	}

	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (l *AttachmentList) Scan(src interface{}) error {
	var raw []byte

	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("attachments: unexpected column type %T", src)
	}

	var refs []AttachmentRef
	if err := json.Unmarshal(raw, &refs); err != nil {
		return err
	}

	if refs == nil {
		refs = AttachmentList{}
	}

	*l = refs
	return nil
}
