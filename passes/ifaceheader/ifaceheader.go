package ifaceheader

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer is a golang.org/x/tools/go/analysis style linter pass.
// Use this with the Vet-style infrastructure.
var Analyzer = &analysis.Analyzer{
	Name:             "ifaceheader",
	Doc:              "reports reinterpretation casts of interface values that bypass the type descriptor",
	Run:              run,
	Requires:         []*analysis.Analyzer{inspect.Analyzer},
	RunDespiteErrors: true,
}

/**
 * run is the entry point to the analysis pass
 */
func run(pass *analysis.Pass) (interface{}, error) {
	// get results from required inspect analyzer
	inspectResult := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	// filter AST of package under analysis for CallExpr nodes
	inspectResult.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		// check if the node is a misuse
		node := n.(*ast.CallExpr)
		if interfaceHeaderCast(node, pass) {
			// if so, report a warning
			pass.Reportf(n.Pos(), "interface header reinterpretation cast, route this through an audited downcast")
		}
	})

	return nil, nil
}

/**
 * checks if a CallExpr node reinterprets an interface value's two-word header
 * through unsafe.Pointer
 */
func interfaceHeaderCast(expr *ast.CallExpr, pass *analysis.Pass) bool {
	// first, check if this node represents a direct pointer cast using unsafe
	source, ok := detectUnsafeCast(expr)
	if !ok {
		return false
	}

	// it is a cast. Check whether the source is an interface value or a
	// pointer to one, which means the cast repoints its header
	sourceType, ok := pass.TypesInfo.Types[source]
	if !ok {
		return false
	}

	return typeIsInterfaceReference(sourceType.Type)
}

/*
 * checks if an AST node is a pointer cast using unsafe, and extracts the
 * expression whose address is being cast
 */
func detectUnsafeCast(expr *ast.CallExpr) (ast.Expr, bool) {
	// the cast target must be a parenthesized pointer type, i.e. (*T)(...)
	targetParen, ok := expr.Fun.(*ast.ParenExpr)
	if !ok {
		return nil, false
	}

	_, ok = targetParen.X.(*ast.StarExpr)
	if !ok {
		return nil, false
	}

	// check if there is an argument to cast at all
	if len(expr.Args) == 0 {
		return nil, false
	}

	// the argument must itself be a call, the intermediate unsafe.Pointer step
	sourceCastCallExpr, ok := expr.Args[0].(*ast.CallExpr)
	if !ok {
		return nil, false
	}

	sourceCastSelector, ok := sourceCastCallExpr.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}

	sourceCastSelectorX, ok := sourceCastSelector.X.(*ast.Ident)
	if !ok {
		return nil, false
	}

	// now, check whether it is unsafe.Pointer indeed
	if sourceCastSelector.Sel.Name != "Pointer" || sourceCastSelectorX.Name != "unsafe" {
		return nil, false
	}

	if len(sourceCastCallExpr.Args) == 0 {
		return nil, false
	}

	// extract the source expression, and take care of a potential & operator
	sourceUnary, ok := sourceCastCallExpr.Args[0].(*ast.UnaryExpr)
	if ok && sourceUnary.Op == token.AND {
		return sourceUnary.X, true
	}

	return sourceCastCallExpr.Args[0], true
}

/**
 * for the source of a cast, checks whether it is an interface value or a
 * pointer to an interface value
 */
func typeIsInterfaceReference(t types.Type) bool {
	if t == nil {
		return false
	}

	// unwrap a pointer source, e.g. a raw *interface{} handle
	pt, ok := t.Underlying().(*types.Pointer)
	if ok {
		t = pt.Elem()
	}

	_, ok = t.Underlying().(*types.Interface)
	return ok
}
