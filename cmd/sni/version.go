package main

import (
	"fmt"
	"io"
	"os"
)

type versionCommand struct {
	out io.Writer
}

func (c *versionCommand) Execute(_ []string) error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out, "sni %s\n", version)
	return err
}
