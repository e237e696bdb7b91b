package main

import "github.com/nikolayk812/klimatshop/internal/cmd"

func main() {
	cmd.Execute()
}
