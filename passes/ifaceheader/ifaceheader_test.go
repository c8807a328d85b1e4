package ifaceheader_test

import (
	"github.com/reem/go-unsafe-any/passes/ifaceheader"
	"golang.org/x/tools/go/analysis/analysistest"
	"testing"
)

func Test(t *testing.T) {
	// use go vet infrastructure testing and supply annotated code examples
	testdata := analysistest.TestData()
	testPackages := []string{
		"bad/header_mirror",
		"bad/nonempty_interface",
		"bad/pointer_handle",

		"good/concrete_cast",
		"good/type_assertion",
		"good/no_cast",
	}
	analysistest.Run(t, testdata, ifaceheader.Analyzer, testPackages...)
}
