package main

import (
	"RoleMatrix/commands"
	"RoleMatrix/commands/help"
	"RoleMatrix/commands/roles"
	"RoleMatrix/utils"

	"github.com/sirupsen/logrus"
)

// newRegistry builds the same module set the bot registers. responder may be nil when
// the registry is only inspected.
func newRegistry(responder utils.InteractionResponder, log logrus.FieldLogger) *commands.Registry {
	registry := commands.NewRegistry(responder, nil, log)
	registry.RegisterModule(roles.NewModule(roles.NewHandler(nil, nil, roles.NewManager(roles.DefaultTimeout), log)))
	registry.RegisterModule(help.NewModule(help.NewHandler(responder, registry)))
	return registry
}
