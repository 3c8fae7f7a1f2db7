package main

import (
	"github.com/loomnetwork/go-loom/plugin"
	"github.com/loomnetwork/helloworld/builtin/plugins/icx"
)

var Contract = icx.Contract

func main() {
	plugin.Serve(Contract)
}
