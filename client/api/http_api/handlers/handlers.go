package handlers

import (
	"github.com/azizazlan/multi-sig-wallet/client/services/node"
)

type HTTPApp struct {
	node node.NodeService
}

func NewHTTPApp(node node.NodeService) *HTTPApp {
	return &HTTPApp{
		node: node,
	}
}
