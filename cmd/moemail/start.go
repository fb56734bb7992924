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

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iewnfod/moemail/internal/database"
	"github.com/iewnfod/moemail/internal/log"
	"github.com/iewnfod/moemail/internal/smtp"
)

// startCommand runs the smtp server until a shutdown signal arrives.
type startCommand struct {
	conn   database.Conn
	server *smtp.Server
}

func (c *startCommand) run() error {
	defer c.close()

	errc := make(chan error, 1)

	go func() {
		errc <- c.server.Listen()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-sigc:
		log.Info().Stringer("signal", sig).Msg("shutting down")
		return c.server.Close()
	}
}

func (c *startCommand) close() {
	if err := c.conn.Close(); err != nil {
		log.Error().Err(err).Msg("could not close the database connection")
	}
}
