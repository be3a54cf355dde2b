package main

import (
	"github.com/maxpoint/icontrol-go/cmd"
)

func main() {
	cmd.Execute()
}
