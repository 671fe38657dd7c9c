package main

import (
	"github.com/public-awesome/marketplace-sub000/cmd"
)

func main() {
	cmd.Execute()
}
