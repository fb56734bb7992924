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
	"errors"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrInvalidAddressFormat is used for addresses of zero length or without
	// an "@" sign.
	ErrInvalidAddressFormat = errors.New("address: invalid format")

	// ErrPathTooLong is used for addresses, that are too long or contain a path
	// that is too long according to RFC#5321.
	ErrPathTooLong = errors.New("address: path too long")

	// ZeroAddress is an invalid, zero value Address.
	ZeroAddress Address
)

// Address is a single email address of the form "local-part@domain".
type Address struct {
	raw string
	at  int
}

// Parse checks the basic format of an address and wraps it in an Address. The
// address is kept as is, no normalization is performed.
func Parse(raw string) (Address, error) {
	if len(raw) == 0 {
		return ZeroAddress, ErrInvalidAddressFormat
	}

	at := strings.LastIndex(raw, "@")
	if at < 0 {
		return ZeroAddress, ErrInvalidAddressFormat
	}

	// see RFC#5321 4.5.3.1
	if at > 64 || len(raw)-at > 256 || len(raw) > 256 {
		return ZeroAddress, ErrPathTooLong
	}

	return Address{raw, at}, nil
}

// ParseNormalized parses an address and normalizes it for lookups. Mailbox
// addresses are matched case-insensitively, so both the local part and the
// domain are case folded.
func ParseNormalized(raw string) (Address, error) {
	addr, err := Parse(raw)
	if err != nil {
		return addr, err
	}

	return addr.Normalized(), nil
}

func (a Address) String() string {
	return a.raw
}

// Normalized returns a case folded copy of the address. The domain is mapped
// to its unicode representation first, so that equivalent IDNA domains
// normalize to the same string.
func (a Address) Normalized() Address {
	localPart := normalizeCase(a.LocalPart())
	domain := a.Domain()

	if mapped, err := DomainToUnicode(domain); err == nil {
		domain = mapped
	}

	domain = normalizeCase(domain)

	return Address{
		raw: localPart + "@" + domain,
		at:  len(localPart),
	}
}

// LocalPart is the part before the last "@" sign.
func (a Address) LocalPart() string {
	return a.raw[:a.at]
}

// Domain is the part after the last "@" sign.
func (a Address) Domain() string {
	return a.raw[a.at+1:]
}

// IsZero checks if the address is the zero value.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Scan implements the sql.Scanner interface.
func (a *Address) Scan(src interface{}) error {
	s, err := driver.String.ConvertValue(src)
	if err != nil {
		return err
	}

	v, err := Parse(s.(string))
	if err != nil {
		return err
	}

	*a = v
	return nil
}

// Value implements the driver.Valuer interface.
func (a Address) Value() (driver.Value, error) {
	return a.raw, nil
}

// DomainToUnicode converts a punycode domain to unicode and applies NFC
// normalization.
func DomainToUnicode(domain string) (string, error) {
	mapped, err := idna.Lookup.ToUnicode(domain)
	if err != nil {
		return domain, err
	}

	return norm.NFC.String(mapped), nil
}

var fold = cases.Fold()

func normalizeCase(s string) string {
	return norm.NFKC.String(fold.String(s))
}
