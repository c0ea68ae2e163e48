//go:build ignore
// +build ignore

package main

import (
	"log"

	mdiu "github.com/mithrel/mdiu/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := mdiu.NewRootCmd()

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "MDIU-CLI",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
