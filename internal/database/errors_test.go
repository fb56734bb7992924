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

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestIsErrNoRows(t *testing.T) {
	assert.True(t, IsErrNoRows(sql.ErrNoRows))
	assert.True(t, IsErrNoRows(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, IsErrNoRows(errors.New("something else")))
	assert.False(t, IsErrNoRows(nil))
}

func TestIsErrUnique(t *testing.T) {
	uniqueErr := sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}

	assert.True(t, IsErrUnique(uniqueErr))
	assert.True(t, IsErrUnique(fmt.Errorf("wrapped: %w", uniqueErr)))
	assert.False(t, IsErrUnique(sql.ErrNoRows))
	assert.False(t, IsErrUnique(nil))
}

func TestIsErrForeignKey(t *testing.T) {
	fkErr := sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	}

	assert.True(t, IsErrForeignKey(fkErr))
	assert.False(t, IsErrForeignKey(sql.ErrNoRows))
	assert.False(t, IsErrForeignKey(nil))
}
