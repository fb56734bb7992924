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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentListRoundTrip(t *testing.T) {
	for _, refs := range []AttachmentList{
		{},
		{
			{Name: "report.pdf", Size: 10240, Key: "alice@x.com-1700000000000-report.pdf"},
		},
		{
			{Name: "a.png", Size: 1, Key: "k1"},
			{Name: "b.png", Size: 2, Key: "k2"},
			{Name: "c.png", Size: 3, Key: "k3"},
		},
	} {
		value, err := refs.Value()
		require.NoError(t, err)

		var scanned AttachmentList
		require.NoError(t, scanned.Scan(value))
		assert.Equal(t, refs, scanned)
	}
}

func TestAttachmentListValueNil(t *testing.T) {
	var refs AttachmentList

	value, err := refs.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestAttachmentListScanNull(t *testing.T) {
	var refs AttachmentList

	require.NoError(t, refs.Scan("null"))
	assert.Equal(t, AttachmentList{}, refs)
}

func TestAttachmentListScanBytes(t *testing.T) {
	var refs AttachmentList

	require.NoError(t, refs.Scan([]byte(`[{"name":"a","size":7,"key":"k"}]`)))
	assert.Equal(t, AttachmentList{{Name: "a", Size: 7, Key: "k"}}, refs)
}

func TestAttachmentListScanInvalid(t *testing.T) {
	var refs AttachmentList

	assert.Error(t, refs.Scan(42))
	assert.Error(t, refs.Scan("not-json"))
}
