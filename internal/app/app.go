package app

import (
	"github.com/spf13/cobra"

	"github.com/xab-mack/stylusaudit/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "stylusaudit", Short: "Smart contract weakness scanner for Stylus and Solidity sources"}
	cli.AddCommands(root)
	return root
}
