package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Deployment is the persisted record of a deployed contract.
// The JSON layout follows the hardhat-deploy deployments/<network>/<Name>.json files.
type Deployment struct {
	Name             string          `json:"name"` // always the file name, e.g. "Frappucino"
	ContractName     string          `json:"contractName"`
	Address          string          `json:"address"`
	ABI              json.RawMessage `json:"abi"`
	TransactionHash  string          `json:"transactionHash"`
	Receipt          *Receipt        `json:"receipt,omitempty"`
	Args             []any           `json:"args"`
	Bytecode         string          `json:"bytecode"`
	DeployedBytecode string          `json:"deployedBytecode,omitempty"`
	NumDeployments   int             `json:"numDeployments"`

	// Recorded for list/show output
	Network   string    `json:"network"`
	ChainID   uint64    `json:"chainId"`
	Deployer  string    `json:"deployer"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Receipt is the subset of the transaction receipt kept with a deployment
type Receipt struct {
	From            string `json:"from"`
	ContractAddress string `json:"contractAddress"`
	BlockNumber     uint64 `json:"blockNumber"`
	BlockHash       string `json:"blockHash"`
	GasUsed         uint64 `json:"gasUsed"`
	Status          uint64 `json:"status"`
	Confirmations   uint64 `json:"confirmations"`
}

// HasTag reports whether the deployment carries tag
func (d *Deployment) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
