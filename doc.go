// fuzz-to-testcase turns crash artifacts saved by a fuzzing run into Rust
// regression tests.
//
// Each argument names a file holding one fuzzer-discovered input. For every
// file the tool prints a #[test] function that replays the same bytes
// through run_fuzz_test and asserts the input is still rejected.
//
// Example:
//
//	fuzz-to-testcase out/crashes/* >> src/tests.rs
//
// Output:
//
//	#[test]
//	fn fuzz_a948904f2f0f479b() {
//		let src = &b"hello world\x0a"[..];
//		let result = run_fuzz_test(src);
//		assert!(result.is_err());
//	}
//
// Test names embed the first 16 hex characters of the artifact's SHA-256
// digest, so regenerating the suite from an unchanged corpus produces a
// byte-identical, diff-friendly result.
package main
