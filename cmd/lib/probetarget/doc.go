// Package probetarget implements a small HTTP service to point the probe at.
//
// The service starts not ready, becomes ready once a countdown reaches zero,
// and can be told to die and come back to life over HTTP. Its /probe/custom
// endpoint answers the way the probe expects (418 with a JSON body) only
// while it is both alive and ready.
//
// To use this library, create a package with main function as:
//
//	func main() {
//		os.Exit(probetarget.Run())
//	}
package probetarget
