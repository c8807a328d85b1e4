package main

import (
	"github.com/reem/go-unsafe-any/passes/ifaceheader"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(ifaceheader.Analyzer)
}
