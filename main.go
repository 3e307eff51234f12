package main

import "github.com/sceneryeditorx/docstrip/cmd/docstrip"

func main() { docstrip.Execute() }
