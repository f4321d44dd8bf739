// Package probe implements the logic for the probe binary.
//
// The probe sends a single GET request to the URL given as its only
// argument and reports through its exit code whether the response was
// a 418 with a JSON content type.
//
// To use this library, create a package with main function as:
//
//	func main() {
//		os.Exit(probe.Run())
//	}
package probe
