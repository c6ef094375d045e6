// Package testing provides the harness widget tests run on: a recording
// painter that logs drawing operations instead of rasterizing them, and a
// scripted frame that lets a test drive input events and pump the update
// queue by hand.
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import casttest "github.com/go-castella/castella/pkg/testing"
package testing
