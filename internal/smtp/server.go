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

package smtp

import (
	"time"

	gosmtp "github.com/emersion/go-smtp"
	"github.com/spf13/viper"

	"github.com/iewnfod/moemail/internal/log"
)

func init() {
	viper.SetDefault("smtp.address", ":2525")
	viper.SetDefault("smtp.domain", "localhost")
	viper.SetDefault("smtp.maxsize", 25*1024*1024)
	viper.SetDefault("smtp.maxrecipients", 50)
	viper.SetDefault("smtp.timeout.read", "1m")
	viper.SetDefault("smtp.timeout.write", "1m")
}

// ServerOptions is a struct of options for the smtp server.
type ServerOptions struct {
	// Address is the local listener address.
	Address string
	// Domain is the hostname advertised in the greeting.
	Domain string
	// MaxMessageBytes is the maximum accepted message size in bytes.
	MaxMessageBytes int64
	// MaxRecipients is the maximum number of recipients per message.
	MaxRecipients int
	// ReadTimeout is the connection read timeout.
	ReadTimeout time.Duration
	// WriteTimeout is the connection write timeout.
	WriteTimeout time.Duration
}

// ServerOptionsFromViper fills ServerOptions using configuration from viper.
//
// `smtp.address` is the local listener address.
// `smtp.domain` is the advertised hostname.
// `smtp.maxsize` is the maximum message size in bytes.
// `smtp.maxrecipients` is the maximum number of recipients per message.
// `smtp.timeout.read` and `smtp.timeout.write` are the connection timeouts.
func ServerOptionsFromViper() ServerOptions {
	return ServerOptions{
		Address:         viper.GetString("smtp.address"),
		Domain:          viper.GetString("smtp.domain"),
		MaxMessageBytes: viper.GetInt64("smtp.maxsize"),
		MaxRecipients:   viper.GetInt("smtp.maxrecipients"),
		ReadTimeout:     viper.GetDuration("smtp.timeout.read"),
		WriteTimeout:    viper.GetDuration("smtp.timeout.write"),
	}
}

// Server listens for smtp connections and feeds them into the backend.
type Server struct {
	server *gosmtp.Server
}

// NewServer creates a new smtp server.
func NewServer(opts ServerOptions, backend gosmtp.Backend) *Server {
	server := gosmtp.NewServer(backend)

	server.Addr = opts.Address
	server.Domain = opts.Domain
	server.MaxMessageBytes = opts.MaxMessageBytes
	server.MaxRecipients = opts.MaxRecipients
	server.ReadTimeout = opts.ReadTimeout
	server.WriteTimeout = opts.WriteTimeout

	return &Server{server: server}
}

// Listen starts accepting connections. It blocks until the server is closed.
func (s *Server) Listen() error {
	log.Info().
		Str("address", s.server.Addr).
		Str("domain", s.server.Domain).
		Msg("listening for smtp connections")

	return s.server.ListenAndServe()
}

// Close stops the listener and hangs up all active connections.
func (s *Server) Close() error {
	return s.server.Close()
}
