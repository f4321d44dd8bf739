// Package errorsbp provides Batch, which collects multiple errors into a
// single one.
//
// The typical use is releasing several resources where every release must
// run and every failure should be reported:
//
//     func release(body io.Closer, conn io.Closer) error {
//         var batch errorsbp.Batch
//         batch.AddPrefix("body", body.Close())
//         batch.AddPrefix("conn", conn.Close())
//         // nil when both succeeded, the single error when only one failed.
//         return batch.Compile()
//     }
//
// Batch is not thread-safe.
package errorsbp
