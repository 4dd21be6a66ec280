package main

import (
	"fmt"
	"os"

	"github.com/kpaschalidis/nft-world/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
