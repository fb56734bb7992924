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

package delivery

import (
	"errors"
)

var (
	// ErrStorageUnavailable is returned when an attachment could not be
	// written to the blob store. Ingestion of the affected message is aborted
	// so that no message is persisted with incomplete attachment references.
	ErrStorageUnavailable = errors.New("delivery: attachment storage unavailable")

	// ErrPersistence is returned when the message could not be persisted.
	// There is no retry queue, the message is lost from the pipeline's
	// perspective and has to be reprocessed manually.
	ErrPersistence = errors.New("delivery: could not persist message")
)
