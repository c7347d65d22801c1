package models

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is a compiled contract loaded from the Foundry out directory
type Artifact struct {
	Name             string
	Path             string // path of the artifact json file
	RawABI           json.RawMessage
	ABI              abi.ABI
	Bytecode         []byte
	DeployedBytecode []byte
}
