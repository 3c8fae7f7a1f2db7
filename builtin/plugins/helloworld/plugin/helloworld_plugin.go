package main

import (
	"github.com/loomnetwork/go-loom/plugin"
	"github.com/loomnetwork/helloworld/builtin/plugins/helloworld"
)

var Contract = helloworld.Contract

func main() {
	plugin.Serve(Contract)
}
