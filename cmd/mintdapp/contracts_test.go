package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c0np4nn4/dapp-practice/client/core/dapp"
)

func TestRegistryTable(t *testing.T) {
	registry, err := dapp.NewRegistry([]dapp.ContractEntry{
		{Label: "Default NFT Contract", Address: "0x05a8C5aFa171aFAE09218a9270ECe34Dd32CbdCD"},
		{Label: "Second", Address: "0x3333333333333333333333333333333333333333"},
	})
	require.NoError(t, err)

	data := registryTable(registry)
	require.Len(t, data, 3)
	assert.Equal(t, []string{"名称", "地址", "默认"}, data[0])
	assert.Equal(t, "Default NFT Contract", data[1][0])
	assert.Equal(t, "*", data[1][2])
	assert.Equal(t, "", data[2][2])
}
