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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for raw, expectedErr := range map[string]error{
		"":            ErrInvalidAddressFormat,
		"no-at-sign":  ErrInvalidAddressFormat,
		"a@" + strings.Repeat("x", 300): ErrPathTooLong,
		strings.Repeat("x", 65) + "@example.com": ErrPathTooLong,
	} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, expectedErr, "raw=%q", raw)
	}

	addr, err := Parse("someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, "someone", addr.LocalPart())
	assert.Equal(t, "example.com", addr.Domain())
	assert.Equal(t, "someone@example.com", addr.String())
}

func TestParseKeepsCase(t *testing.T) {
	addr, err := Parse("Someone@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Someone@Example.com", addr.String())
}

func TestNormalizedIsCaseInsensitive(t *testing.T) {
	upper, err := ParseNormalized("USER@Example.com")
	require.NoError(t, err)

	lower, err := ParseNormalized("user@example.com")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, "user@example.com", upper.String())
}

func TestAddressScanValue(t *testing.T) {
	addr, err := Parse("bob@y.com")
	require.NoError(t, err)

	value, err := addr.Value()
	require.NoError(t, err)
	assert.Equal(t, "bob@y.com", value)

	var scanned Address
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, addr, scanned)
}

func TestIsZero(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())

	addr, err := Parse("bob@y.com")
	require.NoError(t, err)
	assert.False(t, addr.IsZero())
}
