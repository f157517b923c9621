//go:build mage

package main

import (
	"context"

	"github.com/aexvir/harness"
	"github.com/aexvir/harness/commons"

	"github.com/aexvir/tailwindcli/gen"
)

const (
	pkgName             = "github.com/aexvir/tailwindcli"
	commitsarVersion    = "0.20.1"
	golangcilintVersion = "v1.64.5"
)

var h = harness.New(
	harness.WithPreExecFunc(
		func(ctx context.Context) error { // ensure go mod download is run before any task
			return harness.Run(ctx, "go", harness.WithArgs("mod", "download"))
		},
	),
)

// format codebase using gofmt and goimports
func Format(ctx context.Context) error {
	return h.Execute(
		ctx,
		commons.GoFmt(),
		commons.GoImports(pkgName),
	)
}

// lint the code using go mod tidy, commitsar and golangci-lint
func Lint(ctx context.Context) error {
	return h.Execute(
		ctx,
		commons.GoModTidy(),
		commons.Commitsar(
			commons.WithCommitsarVersion(commitsarVersion),
		),
		commons.GolangCILint(
			commons.WithGolangCIVersion(golangcilintVersion),
			commons.WithGolangCICodeClimate(commons.IsCIEnv()),
		),
	)
}

// run unit tests
func Test(ctx context.Context) error {
	return h.Execute(
		ctx,
		commons.GoTest(
			commons.WithTestJunit(commons.IsCIEnv()),
			commons.WithTestCobertura(commons.IsCIEnv()),
			commons.WithTestCIFriendlyOutput(commons.IsCIEnv()),
		),
	)
}

// run go mod tidy
func Tidy(ctx context.Context) error {
	return h.Execute(
		ctx,
		commons.GoModTidy(),
	)
}

// download the official tailwindcss binaries for all supported platforms
// into embedded/bin; required before cutting a release
func Provision(ctx context.Context) error {
	return h.Execute(
		ctx,
		gen.EmbeddedBinaries(),
	)
}
