//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/iewnfod/moemail/internal/crypto"
	"github.com/iewnfod/moemail/internal/database"
	"github.com/iewnfod/moemail/internal/delivery"
	"github.com/iewnfod/moemail/internal/smtp"
	"github.com/iewnfod/moemail/internal/storage"
)

var wireSet = wire.NewSet(
	wire.Struct(new(startCommand), "*"),

	crypto.WireSet,
	database.WireSet,
	delivery.WireSet,
	smtp.WireSet,
	storage.WireSet,
)

func newStartCommand() (*startCommand, error) {
	panic(wire.Build(wireSet))
}
