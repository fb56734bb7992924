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

package crypto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	idGen := NewIDGenerator()

	first, err := idGen.GenerateID()
	require.NoError(t, err)

	second, err := idGen.GenerateID()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	_, err = uuid.Parse(first)
	assert.NoError(t, err)
}
