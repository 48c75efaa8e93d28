package main

import "fmt"

type VersionCmd struct{}

func (c *VersionCmd) Run(globals *Globals) error {
	fmt.Printf("liarsdice %s\n", version)
	return nil
}
